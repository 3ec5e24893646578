package stubs

import (
	"embed"
)

var (
	//go:embed resources
	resources embed.FS
)

// resourcesRoot is the directory in resources that holds the default stubs.
const resourcesRoot = "resources"
