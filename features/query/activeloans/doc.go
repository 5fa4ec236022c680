// Package activeloans implements the Active Loans query.
//
// A loan joins its book and member. Records whose book or member has been
// removed are dropped from the view, not padded with placeholders: an
// incomplete join is not rendered.
package activeloans
