// Package config provides configuration management for the attest application.
//
// It wraps other package configuration to provide a single API for
// loading, validating, watching, and writing configuration files in YAML
// format.
package config
