// Package config handles application configuration loading.
//
// Configuration is read once from environment variables at startup and is
// immutable afterwards. Unset variables fall back to defaults; a variable
// set to the empty string is taken as-is.
package config
