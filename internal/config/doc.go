// Package config loads the server configuration from a YAML file.
//
// Values may reference environment variables with ${VAR}; variables from a
// .env file are loaded first and never override the real environment.
package config
