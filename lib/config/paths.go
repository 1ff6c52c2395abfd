package config

import (
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a path in the config file, resolved relative to the directory
// holding the config.
type CfgPath string

// UnmarshalBase is the directory of the config file being parsed
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	switch {
	case path == "":
		*c = ""
	case filepath.IsAbs(path):
		*c = CfgPath(path)
	default:
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}

func (c CfgPath) String() string {
	return string(c)
}
