// Package config holds the switches that gate which conformance suites run.
//
// Values come from Default, optionally overlaid by a YAML file (Load) and
// then by environment variables (FromEnv), in that order.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-highway-cmplx/hwy"
)

// Environment variables read by FromEnv.
const (
	EnvNoFloat32        = "CMPLX_NO_FLOAT32"
	EnvNoDouble         = "CMPLX_NO_DOUBLE"
	EnvLog10Broken      = "CMPLX_LOG10_BROKEN"
	EnvLog10UsingDouble = "CMPLX_LOG10_USING_DOUBLE"
	EnvRepeat           = "CMPLX_REPEAT"
	EnvLogLevel         = "CMPLX_LOG_LEVEL"
)

// Config selects the precisions and checks of a conformance run.
type Config struct {
	// Float32 enables the single-precision boundary check.
	Float32 bool `yaml:"float32"`
	// Float64 enables the double-precision boundary check.
	Float64 bool `yaml:"float64"`
	// Extended enables the extended-precision boundary check. Go has no
	// extended floating type, so the suite is always reported unsupported.
	Extended bool `yaml:"extended"`

	// DoubleSupport is false on targets without usable double precision;
	// every double-precision check is skipped then.
	DoubleSupport bool `yaml:"double_support"`
	// OpLog10UsingDouble marks a float32 Log10 that computes in double, so
	// the float32 check also needs DoubleSupport.
	OpLog10UsingDouble bool `yaml:"op_log10_using_double"`
	// Log10Broken skips the exact value and sign-of-zero assertions of the
	// edge-case verifier. NaN agreement is still checked.
	Log10Broken bool `yaml:"log10_broken"`

	// Repeat runs the whole suite this many times.
	Repeat int `yaml:"repeat"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration for a platform with full float32 and
// float64 support.
func Default() Config {
	return Config{
		Float32:       true,
		Float64:       true,
		Extended:      true,
		DoubleSupport: true,
		Repeat:        1,
		LogLevel:      "info",
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// FromEnv overlays the CMPLX_* environment variables onto cfg. Boolean
// variables are parsed the way HWY_NO_SIMD is.
func FromEnv(cfg Config) (Config, error) {
	if hwy.EnvBool(EnvNoFloat32) {
		cfg.Float32 = false
	}
	if hwy.EnvBool(EnvNoDouble) {
		cfg.DoubleSupport = false
	}
	if hwy.EnvBool(EnvLog10Broken) {
		cfg.Log10Broken = true
	}
	if hwy.EnvBool(EnvLog10UsingDouble) {
		cfg.OpLog10UsingDouble = true
	}
	if v := os.Getenv(EnvRepeat); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "parsing %s", EnvRepeat)
		}
		cfg.Repeat = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}

// Validate reports every problem with cfg at once.
func (c Config) Validate() error {
	var err error
	if c.Repeat < 1 {
		err = multierr.Append(err, errors.Errorf("repeat must be at least 1, got %d", c.Repeat))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, errors.Wrap(lerr, "log_level"))
	}
	if !c.Float32 && !c.Float64 && !c.Extended {
		err = multierr.Append(err, errors.New("no precision enabled"))
	}
	return err
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Float32Enabled reports whether the single-precision boundary check runs.
func (c Config) Float32Enabled() bool {
	if !c.Float32 {
		return false
	}
	if c.OpLog10UsingDouble {
		return c.DoubleSupport
	}
	return true
}

// Float64Enabled reports whether the double-precision boundary check runs.
func (c Config) Float64Enabled() bool {
	return c.Float64 && c.DoubleSupport
}

// EdgesEnabled reports whether the edge-case verifier runs. The test
// vectors are double precision.
func (c Config) EdgesEnabled() bool {
	return c.DoubleSupport
}
