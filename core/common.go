package core

import (
	"time"
)

// Instead of implementing full value objects, alias types and helper methods are used here ...

// AuthorIDString represents an author identifier.
type AuthorIDString = string

// BookIDString represents a book identifier.
type BookIDString = string

// UserIDString represents a library member identifier.
type UserIDString = string

// RecordIDString represents a loan record identifier.
type RecordIDString = string

// EventTypeString represents an event type identifier.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// DateLayout is the layout of the date-valued entity fields
// (birth date, published date, member since).
const DateLayout = "2006-01-02"

// LoanPeriodDays is the lending period: the due date of every loan is exactly
// this many days after the borrow date.
const LoanPeriodDays = 14

const (
	// BookStatusAvailable is the derived status of a book with no open loan record.
	BookStatusAvailable = "available"

	// BookStatusBorrowed is the derived status of a book with an open loan record.
	BookStatusBorrowed = "borrowed"

	// LoanStatusOnLoan is the display status of a loan record without a returned date.
	LoanStatusOnLoan = "On Loan"

	// LoanStatusReturned is the display status of a loan record with a returned date.
	LoanStatusReturned = "Returned"
)

const (
	// UnknownAuthorID is the identifier of the synthetic placeholder author
	// substituted for dangling author references in projections.
	UnknownAuthorID = "unknown"

	// UnknownAuthorName is the display name of the placeholder author.
	UnknownAuthorName = "Unknown Author"
)

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and
// microsecond precision, matching the precision of the Postgres column.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
