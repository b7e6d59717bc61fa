// Package config defines the typed application configuration and loads it
// from the environment (SKYVIEW_ prefix) with viper, validating the result
// with validator/v10.
package config
