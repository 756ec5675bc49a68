// Package ident generates prefixed unique identifiers such as
// "char_a1b2c3d4e5f6": a short entity-kind prefix joined by an underscore to
// a lowercase hex suffix cut from a random 128-bit value.
//
// Identifiers are plain strings. Uniqueness is probabilistic only; nothing
// is persisted, registered, or checked against prior output. Every function
// is stateless and safe for unrestricted concurrent use.
//
//   - [Generate] builds an identifier from any prefix and hex length.
//   - [Character], [User], [Story], [Segment], [Session] are fixed-shape
//     constructors for common entity kinds.
//   - [Sortable] builds a prefixed K-sortable identifier for callers that
//     need chronological ordering.
//   - [UUID] returns an unprefixed canonical random UUID.
//
// # Quick Start
//
//	id := ident.Character()            // "char_3f8a1c9d02be"
//	id, err := ident.Generate("job", 8) // "job_a1b2c3d4"
package ident
