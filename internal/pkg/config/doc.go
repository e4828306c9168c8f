// Package config provides functionality for loading and managing application
// configuration. Settings structs validate themselves and are populated from
// YAML files or defaults, centralizing configuration for the database layer,
// logging and the record naming conventions.
package config
