// Package defaults holds embedded defaults.
package defaults

import _ "embed"

var (
	// ConfigFile is the default configuration file for newly initialized projects.
	//
	//go:embed acegen.yaml
	ConfigFile []byte
)
