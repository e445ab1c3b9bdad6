// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID value object wrapping github.com/google/uuid
// so that entity identifiers are immutable and validated at the boundaries.
package kernel
