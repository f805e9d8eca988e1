package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		HashKey       string `json:"hash_key"`
		KDF           string `json:"kdf"`
		KDFIterations int    `json:"kdf_iterations"`
		LogFile       string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		Transport      string   `json:"transport"`
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval  Duration `json:"sync_interval"`
		SyncEnabled   *bool    `json:"sync_enabled"`
		MaxRetries    int      `json:"max_retries"`
		ApplyTimeout  Duration `json:"apply_timeout"`
		ProbeInterval Duration `json:"probe_interval"`
		Strategy      string   `json:"strategy"`
	} `json:"workers,omitempty"`

	Vault struct {
		Dir      string   `json:"dir"`
		Interval Duration `json:"interval"`
		Enabled  *bool    `json:"enabled"`
	} `json:"vault,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey:       jsonCfg.App.HashKey,
			KDF:           jsonCfg.App.KDF,
			KDFIterations: jsonCfg.App.KDFIterations,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			Transport:      jsonCfg.Adapter.Transport,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			SyncInterval:  time.Duration(jsonCfg.Workers.SyncInterval),
			SyncEnabled:   jsonCfg.Workers.SyncEnabled,
			MaxRetries:    jsonCfg.Workers.MaxRetries,
			ApplyTimeout:  time.Duration(jsonCfg.Workers.ApplyTimeout),
			ProbeInterval: time.Duration(jsonCfg.Workers.ProbeInterval),
			Strategy:      jsonCfg.Workers.Strategy,
		},
		Vault: Vault{
			Dir:      jsonCfg.Vault.Dir,
			Interval: time.Duration(jsonCfg.Vault.Interval),
			Enabled:  jsonCfg.Vault.Enabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
