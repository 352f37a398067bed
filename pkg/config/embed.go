package config

import (
	_ "embed"

	"github.com/arthur-debert/iconlib/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// defaultsProvider feeds the embedded defaults to koanf; it only supports
// byte reads, so it must be paired with a parser.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) { return defaultConfig, nil }

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "defaults provider requires a parser")
}
