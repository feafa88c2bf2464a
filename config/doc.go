// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Routing and render settings found here are fallbacks for request documents
// that do not carry their own.
package config
