package core

import (
	"time"

	"github.com/google/uuid"
)

// MemberEditedEventType is the event type identifier.
const MemberEditedEventType = "MemberEdited"

// MemberEdited represents a partial update of a member's fields.
// Nil fields are left unchanged by the fold.
type MemberEdited struct {
	EventType  EventTypeString
	UserID     UserIDString
	Name       *string
	Email      *string
	OccurredAt OccurredAtTS
}

// BuildMemberEdited creates a new MemberEdited event.
func BuildMemberEdited(
	userID uuid.UUID,
	name *string,
	email *string,
	occurredAt time.Time,
) MemberEdited {

	return MemberEdited{
		EventType:  MemberEditedEventType,
		UserID:     userID.String(),
		Name:       name,
		Email:      email,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberEdited) IsEventType() string {
	return MemberEditedEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberEdited) HasOccurredAt() time.Time {
	return e.OccurredAt
}
