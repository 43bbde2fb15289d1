// Package config provides configuration for chessgeo.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessgeo-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output OutputConfig
	Batch  BatchConfig
	Server ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Batch:      *NewBatchConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Batch.Workers, errors.ErrInvalidConfig)
	}
	if c.Batch.BufferSize < 0 {
		return fmt.Errorf("buffer size %d: %w", c.Batch.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("empty server address: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("nil output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
