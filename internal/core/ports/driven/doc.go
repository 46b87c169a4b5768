// Package driven defines interfaces the core needs from infrastructure.
// These are the "driven" ports in hexagonal architecture terminology.
//
// Implementations live under internal/adapters/driven.
package driven
