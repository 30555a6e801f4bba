// Package config holds the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gogen/pkg/validator"
)

// Defaults for the fixed parameters of the pipeline and the account exercise.
const (
	DefaultKey       = "password"
	DefaultInput     = "inputdatafile.txt"
	DefaultEncrypted = "encrypteddatafile.txt"
	DefaultDecrypted = "decrytpteddatafile.txt"
	DefaultAccount   = "CharlieBrown42"
)

// Config holds the runtime configuration for the application.
type Config struct {
	// Key is the cipher key, persisted as a single line of each document.
	Key string `label:"--key" mapstructure:"key" validate:"required,singleline" yaml:"key"`

	// Paths are the documents used by run and verify.
	Paths Paths `mapstructure:",squash" yaml:"paths"`

	// Suffixes are appended to source names by batch.
	Suffixes Suffixes `mapstructure:",squash" yaml:"suffixes"`

	// Account is printed back after a successful bounded read.
	Account string `label:"--account" mapstructure:"account" validate:"required" yaml:"account"`

	// Capacity is the bounded buffer size including the terminator slot.
	Capacity int `label:"--capacity" mapstructure:"capacity" validate:"min=2" yaml:"capacity"`

	// Attempts is the number of tries allowed for a bounded read.
	Attempts int `label:"--attempts" mapstructure:"attempts" validate:"min=1" yaml:"attempts"`

	// Parallel is the number of batch workers.
	Parallel int `label:"--parallel" mapstructure:"parallel" validate:"min=1" yaml:"parallel"`

	// Include, Exclude and From select batch inputs inside directories.
	Include []string `mapstructure:"include" yaml:"include,omitempty"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
	From    []string `mapstructure:"from"    yaml:"from,omitempty"`

	// Sources are the positional arguments of batch.
	Sources []string `mapstructure:"-" yaml:"sources,omitempty"`

	LogLevel string `label:"--log-level" mapstructure:"log-level" validate:"oneof=trace debug info warn error off" yaml:"log-level"`
	EnvFile  string `mapstructure:"env-file"                                                                         yaml:"env-file,omitempty"`

	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
	Stats bool `mapstructure:"stats" yaml:"stats"`
	Show  bool `mapstructure:"show"  yaml:"-"`
}

// Paths names the three documents of a single pipeline run.
type Paths struct {
	Input     string `label:"--input"     mapstructure:"input"     validate:"required"                               yaml:"input"`
	Encrypted string `label:"--encrypted" mapstructure:"encrypted" validate:"required,nefield=Input"                 yaml:"encrypted"`
	Decrypted string `label:"--decrypted" mapstructure:"decrypted" validate:"required,nefield=Input,nefield=Encrypted" yaml:"decrypted"`
}

// Suffixes configures batch output names.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required"                yaml:"encrypt-ext"`
	Decrypt string `label:"--decrypt-ext" mapstructure:"decrypt-ext" validate:"required,nefield=Encrypt" yaml:"decrypt-ext"`
}

// Default returns a configuration populated with the built-in defaults.
func Default() Config {
	const defaultCapacity, defaultAttempts = 20, 3

	return Config{
		Key: DefaultKey,
		Paths: Paths{
			Input:     DefaultInput,
			Encrypted: DefaultEncrypted,
			Decrypted: DefaultDecrypted,
		},
		Suffixes: Suffixes{
			Encrypt: ".enc",
			Decrypt: ".dec",
		},
		Account:  DefaultAccount,
		Capacity: defaultCapacity,
		Attempts: defaultAttempts,
		Parallel: 1,
		LogLevel: "warn",
	}
}

// Validate validates the configuration against the struct tags.
// Every failure wraps validator.ErrValidation.
func (c *Config) Validate() error {
	validate := validator.NewValidator()

	if err := register(validate); err != nil {
		return err
	}

	if errs := validate.Validate(c); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w", errors.Join(errs...))
	}

	return nil
}

// Display writes the configuration as YAML, with the key masked.
func (c *Config) Display(w io.Writer) error {
	shown := *c
	shown.Key = mask(shown.Key)

	out, err := yaml.Marshal(shown)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}

func mask(key string) string {
	const visible = 2

	if len(key) <= visible {
		return "***"
	}

	return key[:visible] + "***"
}
