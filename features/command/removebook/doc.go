// Package removebook implements the Remove Book use case.
//
// A book with an open loan record cannot be removed. The filter includes loan
// events so a borrow racing the removal invalidates the optimistic append.
package removebook
