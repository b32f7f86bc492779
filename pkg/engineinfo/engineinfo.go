// Package engineinfo stamps the module with a version, the way
// pkg/engine stamps morlock's version.
package engineinfo

import "github.com/seekerror/build"

// Version is the module version, bumped by hand on notable releases.
var Version = build.NewVersion(0, 1, 0)
