// Package returnbook implements the Return Book use case.
//
// The return closes the loan record identified by RecordID. Returning an
// already returned record fails with a return conflict.
package returnbook
