// Package cli parses command-line arguments into an app.Config. It owns the
// usage text and the ExitError type that carries exit codes up to main.
package cli
