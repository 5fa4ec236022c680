// Package memberborrows implements the Member Borrows query.
//
// The query lists the loan records of a single member, populated with book
// titles. Loans of removed books are dropped as incomplete joins.
package memberborrows
