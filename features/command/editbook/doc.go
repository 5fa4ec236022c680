// Package editbook implements the Edit Book use case.
//
// Catalog fields merge: supplied fields replace the current values, omitted
// fields stay unchanged. Availability cannot be edited. A request may echo a
// status value, but when that value disagrees with the status derived from the
// loan ledger the edit is rejected with a status conflict.
package editbook
