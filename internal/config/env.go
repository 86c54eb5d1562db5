// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseDotEnv reads the dotenv file named by ENV_FILE (default ".env") and
// maps its variables onto a [StructuredConfig] without touching the process
// environment.
//
// A missing default file is not an error and yields a nil config. A missing
// file that was named explicitly through ENV_FILE is reported.
func parseDotEnv() (*StructuredConfig, error) {
	path, explicit := os.LookupEnv(dotEnvPathVariable)
	if !explicit || path == "" {
		path = defaultDotEnvPath
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading dotenv file %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error getting dotenv configs: %w", err)
	}

	return cfg, nil
}
