package core

import (
	"time"

	"github.com/google/uuid"
)

// AuthorAddedEventType is the event type identifier.
const AuthorAddedEventType = "AuthorAdded"

// AuthorAdded represents when a new author is added to the catalog.
type AuthorAdded struct {
	EventType  EventTypeString
	AuthorID   AuthorIDString
	Name       string
	Bio        string
	BirthDate  string
	OccurredAt OccurredAtTS
}

// BuildAuthorAdded creates a new AuthorAdded event.
func BuildAuthorAdded(
	authorID uuid.UUID,
	name string,
	bio string,
	birthDate string,
	occurredAt time.Time,
) AuthorAdded {

	return AuthorAdded{
		EventType:  AuthorAddedEventType,
		AuthorID:   authorID.String(),
		Name:       name,
		Bio:        bio,
		BirthDate:  birthDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AuthorAdded) IsEventType() string {
	return AuthorAddedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AuthorAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
