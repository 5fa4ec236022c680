package removeauthor

import (
	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// state represents the current state projected from the event history.
type state struct {
	authorExists bool
}

// Decide implements the business logic for removing an author.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An author with AuthorID
//	WHEN: RemoveAuthor command is received
//	THEN: AuthorRemoved event is generated
//	ERROR: not found if the author was never added or has already been removed
//
// Books referencing this author are not touched.
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.AuthorID.String())

	if !s.authorExists {
		return core.ErrorDecision(core.NotFoundError{Kind: "author", ID: command.AuthorID.String()})
	}

	return core.SuccessDecision(
		core.BuildAuthorRemoved(command.AuthorID, command.OccurredAt),
	)
}

// project builds the current state by replaying all events from the history.
func project(history core.DomainEvents, authorID string) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.AuthorAdded:
			if e.AuthorID == authorID {
				s.authorExists = true
			}

		case core.AuthorRemoved:
			if e.AuthorID == authorID {
				s.authorExists = false
			}
		}
	}

	return s
}

// BuildEventFilter creates the filter for querying all events related to the
// specified author which are relevant for this use case.
func BuildEventFilter(authorID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.AuthorAddedEventType,
			core.AuthorRemovedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("AuthorID", authorID.String()),
		).
		Finalize()
}
