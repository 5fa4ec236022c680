package members

import (
	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// Project implements the query logic for the member list.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All member events in the system
//	WHEN: Members query is executed
//	THEN: Members is returned with every member not yet removed
func Project(history core.DomainEvents) Members {
	memberInfos := make(map[string]*MemberInfo)
	memberOrder := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.MemberRegistered:
			memberOrder = append(memberOrder, e.UserID)
			memberInfos[e.UserID] = &MemberInfo{
				UserID:       e.UserID,
				Name:         e.Name,
				Email:        e.Email,
				MemberSince:  e.MemberSince,
				RegisteredAt: e.OccurredAt,
			}

		case core.MemberEdited:
			member := memberInfos[e.UserID]
			if member == nil {
				continue
			}
			if e.Name != nil {
				member.Name = *e.Name
			}
			if e.Email != nil {
				member.Email = *e.Email
			}

		case core.MemberRemoved:
			delete(memberInfos, e.UserID)
		}
	}

	memberList := make([]MemberInfo, 0, len(memberInfos))
	for _, userID := range memberOrder {
		member, exists := memberInfos[userID]
		if !exists {
			continue
		}

		// A removed and re-registered member occurs twice in the order.
		delete(memberInfos, userID)

		memberList = append(memberList, *member)
	}

	return Members{
		Members: memberList,
		Count:   len(memberList),
	}
}

// BuildEventFilter creates the filter for querying all events which are
// relevant for this query.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.MemberEditedEventType,
			core.MemberRemovedEventType,
		).
		Finalize()
}
