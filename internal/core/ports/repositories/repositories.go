// Package repositories defines the abstract remote-repository interfaces the
// core depends on. The remote persistence service is an external collaborator:
// the concrete transport lives under internal/adapters and is swappable.
//
// Interfaces follow a reader/writer split with a combined facade for clients
// that need both.
package repositories
