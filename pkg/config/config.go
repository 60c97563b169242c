// Package config loads the userform CLI configuration.
//
// Load merges two layers, highest precedence last:
//
//  1. an optional YAML file,
//  2. environment variables prefixed USERFORM_, where "__" maps to "."
//     (USERFORM_FORM__ALERT_MODE -> form.alert_mode).
//
// The merged tree is unmarshalled over Default and validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform/pkg/userform"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "USERFORM_"

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full CLI configuration.
type Config struct {
	Form   Form   `koanf:"form"`
	Log    Log    `koanf:"log"`
	Render Render `koanf:"render"`
}

// Form configures the state machine.
type Form struct {
	AlertMode    string `koanf:"alert_mode" validate:"oneof=immediate deferred"`
	SubmitPolicy string `koanf:"submit_policy" validate:"oneof=fresh stale_read"`
	ResetOnClose bool   `koanf:"reset_on_close"`
	MessagesFile string `koanf:"messages_file"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
	File   string `koanf:"file"`
}

// Render configures the HTML snapshot renderer.
type Render struct {
	Theme   string `koanf:"theme"`
	Variant string `koanf:"variant"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Form: Form{
			AlertMode:    userform.AlertImmediate.String(),
			SubmitPolicy: userform.SubmitFresh.String(),
		},
		Log: Log{
			Level:  "warn",
			Format: "console",
		},
		Render: Render{
			Theme:   "default",
			Variant: "light",
		},
	}
}

var validate = validator.New()

// Load reads path (skipped when empty) and the environment. A missing path is
// an error; an empty path is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			zap.L().Error("config yaml load failed", zap.String("file", path), zap.Error(err))
			return nil, fmt.Errorf("%w: load %s: %v", ErrInvalid, path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: env overlay: %v", ErrInvalid, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zap.L().Debug("config loaded",
		zap.String("file", path),
		zap.String("alert_mode", cfg.Form.AlertMode),
		zap.String("submit_policy", cfg.Form.SubmitPolicy),
	)
	return &cfg, nil
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	c.Form.AlertMode = strings.ToLower(strings.TrimSpace(c.Form.AlertMode))
	c.Form.SubmitPolicy = strings.ToLower(strings.TrimSpace(c.Form.SubmitPolicy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ReducerOptions translates the form section into reducer options. The
// message catalog is loaded from disk when configured.
func (c *Config) ReducerOptions(logger *zap.Logger) ([]userform.Option, error) {
	mode, err := userform.ParseAlertMode(c.Form.AlertMode)
	if err != nil {
		return nil, err
	}
	policy, err := userform.ParseSubmitPolicy(c.Form.SubmitPolicy)
	if err != nil {
		return nil, err
	}

	var validatorOpts []userform.ValidatorOption
	if c.Form.MessagesFile != "" {
		f, err := os.Open(c.Form.MessagesFile)
		if err != nil {
			return nil, fmt.Errorf("config: open messages: %w", err)
		}
		defer f.Close()
		messages, err := userform.DecodeMessages(f)
		if err != nil {
			return nil, fmt.Errorf("config: messages %s: %w", c.Form.MessagesFile, err)
		}
		validatorOpts = append(validatorOpts, userform.WithMessages(messages))
	}

	return []userform.Option{
		userform.WithValidator(userform.NewValidator(validatorOpts...)),
		userform.WithAlertMode(mode),
		userform.WithSubmitPolicy(policy),
		userform.WithResetOnClose(c.Form.ResetOnClose),
		userform.WithLogger(logger),
	}, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
}
