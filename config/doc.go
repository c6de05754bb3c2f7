// Package config centralizes CLI settings on top of spf13/viper: defaults,
// an optional config file, TRICOUNT_* environment variables and pflag
// bindings, plus the zerolog console logger the commands share.
package config
