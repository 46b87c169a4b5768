// Package cli implements the utilkit command line with cobra.
//
// Commands are thin adapters: they parse arguments, call a driving port,
// and render the result as text or JSON.
package cli
