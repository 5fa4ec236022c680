// Package addbook implements the Add Book use case.
//
// A new book always starts available. The author reference is not validated
// against the author catalog: a dangling reference is allowed and rendered
// with the Unknown Author placeholder by the queries.
package addbook
