// Package utils contains small internal helpers shared by the provider
// implementations: a JSON POST helper and string utilities for log output.
package utils
