// Package config manages user-level settings stored at ~/.rninject/config.yaml.
// Every key can be overridden by an RNINJECT_-prefixed environment variable
// and, for most keys, by a command-line flag.
package config
