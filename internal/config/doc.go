// Package config provides configuration management for the ability CLI.
//
// Configuration is loaded from a single directory. The default directory is
// ~/.config/ability; the --config-path flag or ABILITY_CONFIG_PATH selects
// another one.
//
// # Configuration Directory
//
// The directory contains:
//   - config.yaml (optional main configuration file)
//   - abilities/ (ability definitions, one per file)
//   - categories/ (category definitions, one per file)
//
// # Configuration Keys
//
//	host:
//	  version: 6.9.0        # version reported to the version gate
//	  abilitiesDir: abilities
//	  categoriesDir: categories
//	log:
//	  level: warn           # debug, info, warn, error
//
// Every key can be overridden from the environment with the ABILITY_ prefix
// and dots replaced by underscores, for example ABILITY_LOG_LEVEL=debug.
//
// # Definition Storage
//
// Storage lists and reads definition files (.yaml, .yml, .json, .toml) from a
// directory in file-name order. It reads through an afero.Fs so tests can use
// an in-memory filesystem.
package config
