// Package toml loads docboost.Config from a TOML file with go-toml.
package toml

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/docboost"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the config file at path over docboost.NewConfig defaults.
// A missing file, or an empty path, yields the defaults. Unknown keys are
// rejected so typos surface as errors.
func LoadConfig(path string) (*docboost.Config, error) {
	cfg := docboost.NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := Decode(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes TOML data into cfg, keeping values absent from data.
func Decode(data []byte, cfg *docboost.Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return docboost.Errorf(docboost.EINVALID, "config line %d column %d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return docboost.Errorf(docboost.EINVALID, "config: %s", serr.Error())
		}
		return docboost.Errorf(docboost.EINVALID, "config: %v", err)
	}
	if cfg.Connections == nil {
		cfg.Connections = map[string]string{}
	}
	return nil
}
