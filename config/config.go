// Copyright (C) 2025-2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates configuration for the uuid25 command.
type Config struct {
	Output   OutputConfig   `mapstructure:"output"`
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
}

type OutputConfig struct {
	// Format is the textual UUID form printed by conversions.
	Format string `mapstructure:"format"`
	// Encoding wraps structured output (inspect) as text, json or yaml.
	Encoding string `mapstructure:"encoding"`
}

type GenerateConfig struct {
	Kind  string `mapstructure:"kind"`
	Count int    `mapstructure:"count"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File, when set, receives a JSON copy of every log record.
	File string `mapstructure:"file"`
}

// DefaultConfig returns the values used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   FormatUuid25,
			Encoding: EncodingText,
		},
		Generate: GenerateConfig{
			Kind:  GenerateKindV4,
			Count: 1,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from a file and environment variables.
// If path is empty, "uuid25.yaml" (or any extension viper understands) is looked
// up in the current directory and silently skipped when absent.
// Environment variables use the prefix "UUID25" and the dot character
// in keys is replaced by an underscore. For example, "output.format" becomes
// "UUID25_OUTPUT_FORMAT".
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("uuid25")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("UUID25")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("invalid output.format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(Encodings, c.Output.Encoding) {
		return fmt.Errorf("invalid output.encoding %q (want one of %s)", c.Output.Encoding, strings.Join(Encodings, ", "))
	}
	if !slices.Contains(GenerateKinds, c.Generate.Kind) {
		return fmt.Errorf("invalid generate.kind %q (want one of %s)", c.Generate.Kind, strings.Join(GenerateKinds, ", "))
	}
	if c.Generate.Count < 1 {
		return fmt.Errorf("invalid generate.count %d (must be at least 1)", c.Generate.Count)
	}
	return nil
}

// bindEnvs registers all keys within cfg so that viper will look up
// corresponding environment variables when unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(slices.Clone(parts), tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
