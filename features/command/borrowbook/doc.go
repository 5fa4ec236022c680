// Package borrowbook implements the Borrow Book use case.
//
// A single BookBorrowed event is both the loan record and the availability
// flip of the book, so there is no window in which a record exists while the
// book still reads as available. Two concurrent borrows of the same book race
// on the conditional append: the loser re-reads the history, finds the open
// loan and fails with a borrow conflict. A double borrow is never a no-op.
package borrowbook
