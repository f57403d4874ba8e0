package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".doagent"

// Paths holds resolved filesystem paths used by doagent.
type Paths struct {
	Base   string // ~/.doagent
	Config string // ~/.doagent/config.yaml
	DotEnv string // ./.env
}

// ResolvePaths computes the standard paths. DOAGENT_HOME overrides the
// base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("DOAGENT_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:   base,
		Config: filepath.Join(base, "config.yaml"),
		DotEnv: ".env",
	}, nil
}
