// Package removeauthor implements the Remove Author use case.
//
// Removing an author never cascades: books keep their author reference and the
// catalog projections substitute the Unknown Author placeholder.
package removeauthor
