// Package catalogbooks implements the Book Catalog query.
//
// Every book is populated with its author. A dangling author reference (the
// author was removed or never existed) is rendered with the Unknown Author
// placeholder instead of being dropped. Availability is derived from the loan
// ledger, never stored.
package catalogbooks
