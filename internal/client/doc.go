// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the data service gateway, the weather provider
// and background workers into a single process lifecycle.
package client
