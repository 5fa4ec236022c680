package core

import (
	"time"

	"github.com/google/uuid"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered represents when a new member joins the library.
type MemberRegistered struct {
	EventType   EventTypeString
	UserID      UserIDString
	Name        string
	Email       string
	MemberSince string
	OccurredAt  OccurredAtTS
}

// BuildMemberRegistered creates a new MemberRegistered event.
func BuildMemberRegistered(
	userID uuid.UUID,
	name string,
	email string,
	memberSince string,
	occurredAt time.Time,
) MemberRegistered {

	return MemberRegistered{
		EventType:   MemberRegisteredEventType,
		UserID:      userID.String(),
		Name:        name,
		Email:       email,
		MemberSince: memberSince,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberRegistered) IsEventType() string {
	return MemberRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
