// Package loanhistory implements the Loan History query.
//
// The history lists every loan record, open or closed, populated with its
// book and member. Records whose book or member has been removed are dropped
// as incomplete joins.
package loanhistory
