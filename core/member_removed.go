package core

import (
	"time"

	"github.com/google/uuid"
)

// MemberRemovedEventType is the event type identifier.
const MemberRemovedEventType = "MemberRemoved"

// MemberRemoved represents when a member leaves the library. Open loan
// records of the member are kept; the loan projections drop them as
// incomplete joins.
type MemberRemoved struct {
	EventType  EventTypeString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildMemberRemoved creates a new MemberRemoved event.
func BuildMemberRemoved(userID uuid.UUID, occurredAt time.Time) MemberRemoved {
	return MemberRemoved{
		EventType:  MemberRemovedEventType,
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberRemoved) IsEventType() string {
	return MemberRemovedEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}
