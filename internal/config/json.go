package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		GroupIdentifier string `json:"group_identifier"`
	} `json:"app,omitempty"`

	Keychain struct {
		Backend     string `json:"backend"`
		AccessGroup string `json:"access_group"`
		Service     string `json:"service"`
		FilePath    string `json:"file_path"`
	} `json:"keychain,omitempty"`

	Storage struct {
		DB struct {
			Type         string `json:"type"`
			ContainerDir string `json:"container_dir"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		VaultFile string   `json:"vault_file"`
		UserID    string   `json:"user_id"`
		Debounce  Duration `json:"debounce"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
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
			GroupIdentifier: jsonCfg.App.GroupIdentifier,
		},
		Keychain: Keychain{
			Backend:     jsonCfg.Keychain.Backend,
			AccessGroup: jsonCfg.Keychain.AccessGroup,
			Service:     jsonCfg.Keychain.Service,
			FilePath:    jsonCfg.Keychain.FilePath,
		},
		Storage: Storage{
			DB: DB{
				Type:         jsonCfg.Storage.DB.Type,
				ContainerDir: jsonCfg.Storage.DB.ContainerDir,
			},
		},
		Workers: Workers{
			VaultFile: jsonCfg.Workers.VaultFile,
			UserID:    jsonCfg.Workers.UserID,
			Debounce:  time.Duration(jsonCfg.Workers.Debounce),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
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
