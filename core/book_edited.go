package core

import (
	"time"

	"github.com/google/uuid"
)

// BookEditedEventType is the event type identifier.
const BookEditedEventType = "BookEdited"

// BookEdited represents a partial update of a book's catalog fields.
// Nil fields are left unchanged by the fold. Status is not among the fields:
// an edit can never flip availability, that is the ledger's job.
type BookEdited struct {
	EventType     EventTypeString
	BookID        BookIDString
	Title         *string
	AuthorID      *AuthorIDString
	ISBN          *string
	PublishedDate *string
	Description   *string
	CoverImage    *string
	OccurredAt    OccurredAtTS
}

// BuildBookEdited creates a new BookEdited event.
func BuildBookEdited(
	bookID uuid.UUID,
	title *string,
	authorID *string,
	isbn *string,
	publishedDate *string,
	description *string,
	coverImage *string,
	occurredAt time.Time,
) BookEdited {

	return BookEdited{
		EventType:     BookEditedEventType,
		BookID:        bookID.String(),
		Title:         title,
		AuthorID:      authorID,
		ISBN:          isbn,
		PublishedDate: publishedDate,
		Description:   description,
		CoverImage:    coverImage,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookEdited) IsEventType() string {
	return BookEditedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookEdited) HasOccurredAt() time.Time {
	return e.OccurredAt
}
