package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tasknotes/internal/flagx"
	"github.com/dmitrijs2005/tasknotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero".
type JsonConfig struct {
	ServerURL        *string         `json:"server_url"`
	DatabasePath     *string         `json:"database_path"`
	HandshakeMode    *string         `json:"handshake_mode"`
	HandshakeTimeout *timex.Duration `json:"handshake_timeout"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	CAPath           *string         `json:"ca_path"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c / -config. Without the flag it does nothing. Read or decode errors
// panic; the caller is expected to fail fast at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.HandshakeMode != nil {
		cfg.HandshakeMode = *jc.HandshakeMode
	}
	if jc.HandshakeTimeout != nil {
		cfg.HandshakeTimeout = jc.HandshakeTimeout.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CAPath != nil {
		cfg.CAPath = *jc.CAPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
