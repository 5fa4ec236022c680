package core

import (
	"time"

	"github.com/google/uuid"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a member borrows a book. The single event is
// both the loan record and the availability flip: a book is borrowed exactly
// when its latest loan event is a BookBorrowed without a matching BookReturned.
type BookBorrowed struct {
	EventType    EventTypeString
	RecordID     RecordIDString
	BookID       BookIDString
	UserID       UserIDString
	BorrowedDate string
	DueDate      string
	OccurredAt   OccurredAtTS
}

// BuildBookBorrowed creates a new BookBorrowed event.
// The due date is always the borrow date plus the loan period.
func BuildBookBorrowed(
	recordID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	borrowedDate time.Time,
	occurredAt time.Time,
) BookBorrowed {

	return BookBorrowed{
		EventType:    BookBorrowedEventType,
		RecordID:     recordID.String(),
		BookID:       bookID.String(),
		UserID:       userID.String(),
		BorrowedDate: borrowedDate.Format(DateLayout),
		DueDate:      borrowedDate.AddDate(0, 0, LoanPeriodDays).Format(DateLayout),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
