package core

import (
	"time"

	"github.com/google/uuid"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a member returns a borrowed book, closing the
// loan record identified by RecordID.
type BookReturned struct {
	EventType    EventTypeString
	RecordID     RecordIDString
	BookID       BookIDString
	UserID       UserIDString
	ReturnedDate string
	OccurredAt   OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(
	recordID uuid.UUID,
	bookID uuid.UUID,
	userID uuid.UUID,
	returnedDate time.Time,
	occurredAt time.Time,
) BookReturned {

	return BookReturned{
		EventType:    BookReturnedEventType,
		RecordID:     recordID.String(),
		BookID:       bookID.String(),
		UserID:       userID.String(),
		ReturnedDate: returnedDate.Format(DateLayout),
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturned) IsEventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
