package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are accepted both as strings ("10m") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version             string   `json:"version"`
		ResetCodeTTL        Duration `json:"reset_code_ttl"`
		ResetGrantSignKey   string   `json:"reset_grant_sign_key"`
		ResetGrantTTL       Duration `json:"reset_grant_ttl"`
		LegacyPasswordReset bool     `json:"legacy_password_reset"`
		PasswordHashCost    int      `json:"password_hash_cost"`
		LogLevel            string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		OAuthState struct {
			TTL      Duration `json:"ttl"`
			Capacity int      `json:"capacity"`
		} `json:"oauth_state,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		SMTP struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
		} `json:"smtp,omitempty"`

		Google struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			RedirectURL  string `json:"redirect_url"`
		} `json:"google,omitempty"`

		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval"`
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
			Version:             jsonCfg.App.Version,
			ResetCodeTTL:        time.Duration(jsonCfg.App.ResetCodeTTL),
			ResetGrantSignKey:   jsonCfg.App.ResetGrantSignKey,
			ResetGrantTTL:       time.Duration(jsonCfg.App.ResetGrantTTL),
			LegacyPasswordReset: jsonCfg.App.LegacyPasswordReset,
			PasswordHashCost:    jsonCfg.App.PasswordHashCost,
			LogLevel:            jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			OAuthState: OAuthState{
				TTL:      time.Duration(jsonCfg.Storage.OAuthState.TTL),
				Capacity: jsonCfg.Storage.OAuthState.Capacity,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			SMTP: SMTP{
				Host:     jsonCfg.Adapter.SMTP.Host,
				Port:     jsonCfg.Adapter.SMTP.Port,
				Username: jsonCfg.Adapter.SMTP.Username,
				Password: jsonCfg.Adapter.SMTP.Password,
				From:     jsonCfg.Adapter.SMTP.From,
			},
			Google: Google{
				ClientID:     jsonCfg.Adapter.Google.ClientID,
				ClientSecret: jsonCfg.Adapter.Google.ClientSecret,
				RedirectURL:  jsonCfg.Adapter.Google.RedirectURL,
			},
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
