package plg

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/service/codec"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration.
// Fields missing from a loaded file keep the DefaultConfig values.
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
	Codec   CodecConfig   `json:"codec" yaml:"codec"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// StorageConfig locates the repository; an empty BaseURL keeps processes in
// memory.
type StorageConfig struct {
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Output is the trace file, stdout when empty.
	Output string `json:"output" yaml:"output"`
}

type CodecConfig struct {
	Indent         string `json:"indent" yaml:"indent"`
	LibraryName    string `json:"libraryName" yaml:"libraryName"`
	LibraryVersion string `json:"libraryVersion" yaml:"libraryVersion"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Codec: CodecConfig{
			Indent:         "  ",
			LibraryName:    codec.LibraryName,
			LibraryVersion: codec.LibraryVersion,
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Codec.LibraryName == "" {
		errs = append(errs, fmt.Errorf("codec.libraryName must not be empty"))
	}
	if c.Codec.LibraryVersion == "" {
		errs = append(errs, fmt.Errorf("codec.libraryVersion must not be empty"))
	}
	if c.Tracing.Output != "" && !c.Tracing.Enabled {
		errs = append(errs, fmt.Errorf("tracing.output requires tracing.enabled"))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML configuration from URL.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
