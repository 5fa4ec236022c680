package removemember

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	memberExists bool
}

// Decide implements the business logic for removing a member.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A member with UserID
//	WHEN: RemoveMember command is received
//	THEN: MemberRemoved event is generated
//	ERROR: not found if the member was never registered or has already been removed
//
// Open loans of the member do not block the removal.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.UserID.String())

	if !s.memberExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "member", ID: command.UserID.String()})
	}

	return core.SuccessDecision(
		core.BuildMemberRemoved(command.UserID, command.OccurredAt),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, userID string) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.MemberRegistered:
			if e.UserID == userID {
				s.memberExists = true
			}

		case core.MemberRemoved:
			if e.UserID == userID {
				s.memberExists = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events related to the
// specified member which are relevant for this use case.
func BuildEventFilter(userID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.MemberRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID.String()),
		).
		Finalize()
}
