package core

import (
	"time"

	"github.com/google/uuid"
)

// AuthorEditedEventType is the event type identifier.
const AuthorEditedEventType = "AuthorEdited"

// AuthorEdited represents a partial update of an author's fields.
// Nil fields are left unchanged by the fold.
type AuthorEdited struct {
	EventType  EventTypeString
	AuthorID   AuthorIDString
	Name       *string
	Bio        *string
	BirthDate  *string
	OccurredAt OccurredAtTS
}

// BuildAuthorEdited creates a new AuthorEdited event.
func BuildAuthorEdited(
	authorID uuid.UUID,
	name *string,
	bio *string,
	birthDate *string,
	occurredAt time.Time,
) AuthorEdited {

	return AuthorEdited{
		EventType:  AuthorEditedEventType,
		AuthorID:   authorID.String(),
		Name:       name,
		Bio:        bio,
		BirthDate:  birthDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AuthorEdited) IsEventType() string {
	return AuthorEditedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AuthorEdited) HasOccurredAt() time.Time {
	return e.OccurredAt
}
