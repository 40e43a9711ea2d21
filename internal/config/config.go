// Package config loads the algokit CLI settings from a YAML file.
//
// Precedence is flags over file over Default(). Library packages never
// read configuration.
package config

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algokit/sorting"
)

// ErrInvalid marks every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Log controls the CLI logger.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Sort holds defaults for the sort command.
type Sort struct {
	Algorithm  string `yaml:"algorithm"`
	Descending bool   `yaml:"descending"`
}

// Matrix holds default dimensions for the matrix commands.
type Matrix struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Config is the root of the YAML document.
type Config struct {
	Log    Log    `yaml:"log"`
	Sort   Sort   `yaml:"sort"`
	Matrix Matrix `yaml:"matrix"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Sort:   Sort{Algorithm: sorting.DefaultAlgorithm.String()},
		Matrix: Matrix{Rows: 3, Cols: 3},
	}
}

// Load reads path on top of Default and validates the result.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML document from r on top of Default and validates it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks level names, algorithm names and matrix dimensions.
func (c Config) Validate() error {
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return errors.Wrapf(ErrInvalid, "log.level %q", c.Log.Level)
	}
	if _, err := sorting.ParseAlgorithm(c.Sort.Algorithm); err != nil {
		return errors.Wrapf(ErrInvalid, "sort.algorithm %q", c.Sort.Algorithm)
	}
	if c.Matrix.Rows <= 0 || c.Matrix.Cols <= 0 {
		return errors.Wrapf(ErrInvalid, "matrix dimensions %dx%d", c.Matrix.Rows, c.Matrix.Cols)
	}

	return nil
}

// Algorithm returns the parsed sort algorithm. Call after Validate.
func (c Config) Algorithm() sorting.Algorithm {
	a, err := sorting.ParseAlgorithm(c.Sort.Algorithm)
	if err != nil {
		return sorting.DefaultAlgorithm
	}

	return a
}
