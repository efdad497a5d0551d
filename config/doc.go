// Package config holds the slicer's print profile: bed geometry, layer
// and shell sizing, speeds, and material constants (§6).
//
// Profile is a plain struct built through functional Options, mirroring
// the dfs/bfs Option pattern rather than a builder type, since a
// profile has no intermediate validation state worth hiding.
package config
