package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenDuration            Duration `json:"token_duration"`
		TokenIssuer              string   `json:"token_issuer"`
		ResetEnabled             bool     `json:"reset_enabled"`
		ResetSignKey             string   `json:"reset_sign_key"`
		RoutesAuthMode           string   `json:"routes_auth_mode"`
		AllowAnonymousUserUpdate bool     `json:"allow_anonymous_user_update"`
		SkipMigrations           bool     `json:"skip_migrations"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			User     string `json:"user"`
			Password string `json:"password"`
			Name     string `json:"name"`
			SSLMode  string `json:"ssl_mode"`
			DSN      string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	UsersService struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"users_service,omitempty"`
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
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			ResetEnabled:             jsonCfg.App.ResetEnabled,
			ResetSignKey:             jsonCfg.App.ResetSignKey,
			RoutesAuthMode:           jsonCfg.App.RoutesAuthMode,
			AllowAnonymousUserUpdate: jsonCfg.App.AllowAnonymousUserUpdate,
			SkipMigrations:           jsonCfg.App.SkipMigrations,
		},
		Storage: Storage{
			DB: DB{
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Name:     jsonCfg.Storage.DB.Name,
				SSLMode:  jsonCfg.Storage.DB.SSLMode,
				DSN:      jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			UsersServiceURL: jsonCfg.UsersService.URL,
			RequestTimeout:  time.Duration(jsonCfg.UsersService.RequestTimeout),
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
