package core

import (
	"time"

	"github.com/google/uuid"
)

// BookAddedEventType is the event type identifier.
const BookAddedEventType = "BookAdded"

// BookAdded represents when a new book is added to the catalog.
// There is deliberately no status field: availability is derived from the
// book's borrow/return history.
type BookAdded struct {
	EventType     EventTypeString
	BookID        BookIDString
	Title         string
	AuthorID      AuthorIDString
	ISBN          string
	PublishedDate string
	Description   string
	CoverImage    string
	OccurredAt    OccurredAtTS
}

// BuildBookAdded creates a new BookAdded event.
func BuildBookAdded(
	bookID uuid.UUID,
	title string,
	authorID string,
	isbn string,
	publishedDate string,
	description string,
	coverImage string,
	occurredAt time.Time,
) BookAdded {

	return BookAdded{
		EventType:     BookAddedEventType,
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
func (e BookAdded) IsEventType() string {
	return BookAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
