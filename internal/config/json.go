package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`

		Files struct {
			SyncDir    string `json:"sync_dir"`
			ScratchDir string `json:"scratch_dir"`
			Root       string `json:"root"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     uint     `json:"retry_count"`
		ClearCacheURL  string   `json:"clear_cache_url"`
		SignKey        string   `json:"sign_key"`
	} `json:"adapter,omitempty"`

	Sync struct {
		AreasFile     string   `json:"areas_file"`
		CatalogFile   string   `json:"catalog_file"`
		ExportTimeout Duration `json:"export_timeout"`
		DefaultTarget string   `json:"default_target"`
	} `json:"sync,omitempty"`

	Workers struct {
		ScheduledModules []int    `json:"scheduled_modules"`
		SyncInterval     Duration `json:"sync_interval"`
		RunTimeout       Duration `json:"run_timeout"`
		WaitingThreshold Duration `json:"waiting_threshold"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Files: Files{
				SyncDir:    jsonCfg.Storage.Files.SyncDir,
				ScratchDir: jsonCfg.Storage.Files.ScratchDir,
				Root:       jsonCfg.Storage.Files.Root,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
			ClearCacheURL:  jsonCfg.Adapter.ClearCacheURL,
			SignKey:        jsonCfg.Adapter.SignKey,
		},
		Sync: Sync{
			AreasFile:     jsonCfg.Sync.AreasFile,
			CatalogFile:   jsonCfg.Sync.CatalogFile,
			ExportTimeout: time.Duration(jsonCfg.Sync.ExportTimeout),
			DefaultTarget: jsonCfg.Sync.DefaultTarget,
		},
		Workers: Workers{
			ScheduledModules: jsonCfg.Workers.ScheduledModules,
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			RunTimeout:       time.Duration(jsonCfg.Workers.RunTimeout),
			WaitingThreshold: time.Duration(jsonCfg.Workers.WaitingThreshold),
		},
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
