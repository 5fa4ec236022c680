package core

import (
	"time"

	"github.com/google/uuid"
)

// AuthorRemovedEventType is the event type identifier.
const AuthorRemovedEventType = "AuthorRemoved"

// AuthorRemoved represents when an author is removed from the catalog.
// Books referencing the author keep their dangling reference; projections
// substitute the Unknown Author placeholder.
type AuthorRemoved struct {
	EventType  EventTypeString
	AuthorID   AuthorIDString
	OccurredAt OccurredAtTS
}

// BuildAuthorRemoved creates a new AuthorRemoved event.
func BuildAuthorRemoved(authorID uuid.UUID, occurredAt time.Time) AuthorRemoved {
	return AuthorRemoved{
		EventType:  AuthorRemovedEventType,
		AuthorID:   authorID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AuthorRemoved) IsEventType() string {
	return AuthorRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AuthorRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
