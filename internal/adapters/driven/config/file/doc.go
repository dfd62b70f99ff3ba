// Package file stores client configuration as TOML on the local
// filesystem, by default at ~/.minutes/config.toml.
package file
