// Package config loads the daemon's YAML configuration file
// (gopkg.in/yaml.v3), following the same apiVersion/kind/spec envelope
// cmd/warren's apply command uses for its resource files, but for the
// daemon's own startup settings rather than cluster resources.
package config
