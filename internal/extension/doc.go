// Package extension reads the identity of an extension package from its
// package.json, so a registry update can take the id and version from the
// package being registered instead of from configuration.
package extension
