package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-r remote HTTP backend address
//	-g remote gRPC backend address
//	-transport remote transport (http|grpc)
//	-d local database file
//	-c/-config json file path with configs
//	-hash-key request integrity hash key
//	-token bearer token for the remote backend
//	-request-timeout request timeout (e.g., "15s")
//	-sync-interval background drain interval (e.g., "60s")
//	-max-retries retry ceiling before dead-lettering
//	-strategy conflict resolution strategy
//	-vault-dir markdown vault directory
//	-vault-interval vault drain interval (e.g., "5s")
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("life-keeper", flag.ContinueOnError)

	var controlAddress NetAddress
	var remoteAddress, grpcAddress, transport string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey, token string
	var requestTimeout, syncInterval, vaultInterval time.Duration
	var maxRetries int
	var strategy string
	var vaultDir string
	var logFile string

	fs.Var(&controlAddress, "a", "Control API address host:port")
	fs.StringVar(&remoteAddress, "r", "", "Remote HTTP backend address")
	fs.StringVar(&grpcAddress, "g", "", "Remote gRPC backend address")
	fs.StringVar(&transport, "transport", "", "Remote transport (http|grpc)")
	fs.StringVar(&databaseDSN, "d", "", "Local database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&token, "token", "", "Bearer token for the remote backend")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background drain interval (e.g., 60s)")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retry ceiling before dead-lettering")
	fs.StringVar(&strategy, "strategy", "", "Conflict resolution strategy")
	fs.StringVar(&vaultDir, "vault-dir", "", "Markdown vault directory")
	fs.DurationVar(&vaultInterval, "vault-interval", 0, "Vault drain interval (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: controlAddress.String(),
		},
		Adapter: Adapter{
			Transport:      transport,
			HTTPAddress:    remoteAddress,
			GRPCAddress:    grpcAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			MaxRetries:   maxRetries,
			Strategy:     strategy,
		},
		Vault: Vault{
			Dir:      vaultDir,
			Interval: vaultInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
