package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/prepwyse/prepwyse/internal/flagx"
	"github.com/prepwyse/prepwyse/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	BackendLatency timex.Duration `json:"backend_latency"`
	SigningKey     string         `json:"signing_key"`
	TokenValidity  timex.Duration `json:"token_validity"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); if empty, no JSON is loaded. Only fields present
// in the file override the existing Config. Panics on read or unmarshal
// errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.BackendLatency.Duration != 0 {
		cfg.BackendLatency = time.Duration(jc.BackendLatency.Duration)
	}
	if jc.SigningKey != "" {
		cfg.SigningKey = jc.SigningKey
	}
	if jc.TokenValidity.Duration != 0 {
		cfg.TokenValidity = time.Duration(jc.TokenValidity.Duration)
	}
}
