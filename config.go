// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ordering

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/z5labs/ordering/config"
	"github.com/z5labs/ordering/internal/otel"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	bedrockcfg "github.com/z5labs/bedrock/config"
)

// ConfigSource reads YAML from r after rendering it as a Go template.
// Two template functions are available:
//   - env returns the named environment variable, or nil if it is unset
//   - default returns its first argument when the piped value is nil
func ConfigSource(r io.Reader) bedrockcfg.Source {
	return bedrockcfg.FromYaml(
		bedrockcfg.RenderTextTemplate(
			r,
			bedrockcfg.TemplateFunc("env", func(key string) any {
				v, ok := os.LookupEnv(key)
				if ok {
					return v
				}
				return nil
			}),
			bedrockcfg.TemplateFunc("default", func(def, v any) any {
				if v == nil {
					return def
				}
				return v
			}),
		),
	)
}

//go:embed default_config.yaml
var defaultConfig []byte

// DefaultConfig returns the source of the defaults for [Config].
func DefaultConfig() bedrockcfg.Source {
	return ConfigSource(bytes.NewReader(defaultConfig))
}

// LoadDotEnv adds the variables of the given .env files, or ./.env when
// none are given, to the environment so they can be read with env in a
// [ConfigSource]. Variables already set are not overridden and missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the `validate` struct tags of cfg.
func Validate(cfg any) error {
	return validate.Struct(cfg)
}

// Config is the configuration common to every order service binary.
type Config struct {
	OTel config.OTel `config:"otel"`
}

// InitializeOTel implements the [appbuilder.OTelInitializer] interface.
func (cfg Config) InitializeOTel(ctx context.Context) error {
	return otel.Initialize(ctx, cfg.OTel)
}
