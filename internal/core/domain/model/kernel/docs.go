// Package kernel contains shared value objects used across the domain model.
// These are immutable, validated primitives: identifiers and physical
// dimensions. All types in this package must be created through their
// constructor functions; zero values fail validation.
package kernel
