package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-life-keeper/internal/config"
	"github.com/MKhiriev/go-life-keeper/internal/logger"
	"github.com/MKhiriev/go-life-keeper/internal/utils"
	"github.com/MKhiriev/go-life-keeper/models"
)

type grpcRemoteAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	mu        sync.RWMutex
	token     string
	tokenInfo utils.TokenInfo

	now    func() time.Time
	logger *logger.Logger
}

// NewGRPCRemoteAdapter constructs the gRPC implementation of [Remote] for
// adapterCfg.GRPCAddress. The connection is lazy: no I/O happens until the
// first call. Extra dial options are appended after the defaults (plaintext
// transport, JSON content subtype).
func NewGRPCRemoteAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (Remote, error) {
	addr := strings.TrimSpace(adapterCfg.GRPCAddress)
	if addr == "" {
		return nil, fmt.Errorf("%w: empty grpc address", ErrInvalidAddress)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodecName)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	a := &grpcRemoteAdapter{conn: conn, timeout: timeout, now: time.Now, logger: logger}
	if adapterCfg.Token != "" {
		a.SetToken(adapterCfg.Token)
	}
	return a, nil
}

func (g *grpcRemoteAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if bare, err := utils.ParseBearerToken(token); err == nil {
		token = bare
	}

	var info utils.TokenInfo
	if token != "" {
		if parsed, err := utils.InspectToken(token); err == nil {
			info = parsed
		} else {
			g.logger.Warn().Err(err).Str("func", "grpcRemoteAdapter.SetToken").Msg("bearer token is not a JWT; expiry is not checked")
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
	g.tokenInfo = info
}

func (g *grpcRemoteAdapter) FetchRemoteVersion(ctx context.Context, ref models.RecordRef) (*models.Record, error) {
	var resp models.FetchRecordResponse
	err := g.invoke(ctx, methodFetchRemoteVersion, &models.FetchRecordRequest{Ref: ref}, &resp)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !resp.Found || resp.Record == nil {
		return nil, nil
	}
	return resp.Record, nil
}

func (g *grpcRemoteAdapter) ApplyMutation(ctx context.Context, mutationType models.MutationType, payload models.Record) error {
	var resp models.PingResponse
	err := g.invoke(ctx, methodApplyMutation, &models.ApplyMutationRequest{Type: mutationType, Payload: payload}, &resp)
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%w: %s not found", ErrRemote, payload.Ref())
	}
	return err
}

func (g *grpcRemoteAdapter) Ping(ctx context.Context) error {
	var resp models.PingResponse
	err := g.invoke(ctx, methodPing, &models.PingRequest{}, &resp)
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%w: ping not implemented", ErrRemote)
	}
	return err
}

func (g *grpcRemoteAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcRemoteAdapter) invoke(ctx context.Context, method string, req, resp any) error {
	g.mu.RLock()
	token, info := g.token, g.tokenInfo
	g.mu.RUnlock()

	if token != "" && info.Expired(g.now()) {
		return fmt.Errorf("%w: token expired at %s", ErrUnauthorized, info.ExpiresAt.Format(time.RFC3339))
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-trace-id", traceID)
	}

	return mapGRPCError(g.conn.Invoke(ctx, method, req, resp))
}
