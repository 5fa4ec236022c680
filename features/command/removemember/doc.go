// Package removemember implements the Remove Member use case.
//
// Open loan records do not block the removal. The records stay in the ledger;
// loan projections drop them as incomplete joins once the member is gone.
package removemember
