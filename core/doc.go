// Package core holds the pure domain layer of the lending service: domain
// events, the decision result type used by the feature slices' Decide
// functions, input validation, and the typed error taxonomy.
//
// Nothing in this package performs I/O. Entity state (authors, books,
// members, loan records) is always the fold of the events in this package;
// in particular a book's availability is derived from its borrow/return
// history and never stored, so it cannot be corrupted by a field-level edit.
package core
