// Package config loads the optional coal.toml project file the CLI
// consults for its default flag values: a small TOML-unmarshal pattern
// scaled to Coal's configuration surface.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// FileName is the config file the CLI looks for in the directory that
// holds the source file being compiled.
const FileName = "coal.toml"

// tomlFile is coal.toml's on-disk shape.
type tomlFile struct {
	Coal *tomlCoal `toml:"coal"`
}

type tomlCoal struct {
	CC       string `toml:"cc"`
	Output   string `toml:"output"`
	LogLevel string `toml:"loglevel"`
	KeepLL   bool   `toml:"keep-ll"`
}

// Config holds coal.toml's values after defaulting; zero values mean "not
// set in the file", letting the CLI decide precedence against its own
// flag defaults.
type Config struct {
	CC       string
	Output   string
	LogLevel string
	KeepLL   bool
	Present  bool
}

// Load reads coal.toml from dir if it exists. A missing file is not an
// error — it simply yields an empty, Present=false Config, so the CLI
// falls back entirely to its built-in defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var tf tomlFile
	if err := toml.Unmarshal(buf, &tf); err != nil {
		return nil, err
	}

	cfg := &Config{Present: true}
	if tf.Coal != nil {
		cfg.CC = tf.Coal.CC
		cfg.Output = tf.Coal.Output
		cfg.LogLevel = tf.Coal.LogLevel
		cfg.KeepLL = tf.Coal.KeepLL
	}
	return cfg, nil
}
