package adapter

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/MKhiriev/go-life-keeper/models"
)

// The sync service is described by hand and carried with a JSON codec, so
// the client needs no generated protobuf stubs. Messages are the models.*
// request/response types.

const (
	syncServiceName = "lifekeeper.sync.v1.SyncService"

	methodFetchRemoteVersion = "/" + syncServiceName + "/FetchRemoteVersion"
	methodApplyMutation      = "/" + syncServiceName + "/ApplyMutation"
	methodPing               = "/" + syncServiceName + "/Ping"
)

const jsonCodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// syncServer is the server side of the sync service. The client in this
// package never implements it; it exists so the wire contract is defined in
// one place.
type syncServer interface {
	FetchRemoteVersion(ctx context.Context, req *models.FetchRecordRequest) (*models.FetchRecordResponse, error)
	ApplyMutation(ctx context.Context, req *models.ApplyMutationRequest) (*models.PingResponse, error)
	Ping(ctx context.Context, req *models.PingRequest) (*models.PingResponse, error)
}

func unaryHandler[Req any, Resp any](method string, call func(syncServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(syncServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(syncServer), ctx, req.(*Req))
		})
	}
}

var syncServiceDesc = grpc.ServiceDesc{
	ServiceName: syncServiceName,
	HandlerType: (*syncServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FetchRemoteVersion",
			Handler:    unaryHandler(methodFetchRemoteVersion, syncServer.FetchRemoteVersion),
		},
		{
			MethodName: "ApplyMutation",
			Handler:    unaryHandler(methodApplyMutation, syncServer.ApplyMutation),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(methodPing, syncServer.Ping),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lifekeeper/sync/v1/sync.proto",
}
