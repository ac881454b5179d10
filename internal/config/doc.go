// Package config manages the operator settings for a registry update, stored
// at ~/.extreg/config.yaml and overridable through EXTREG_* environment
// variables. The settings name the registry file, the extension to register,
// and the metadata written for it.
package config
