package authors

import (
	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

// Project implements the query logic for the author list.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All author events in the system
//	WHEN: Authors query is executed
//	THEN: Authors is returned with every author not yet removed
func Project(history core.DomainEvents) Authors {
	authorInfos := make(map[string]*AuthorInfo)
	authorOrder := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.AuthorAdded:
			authorOrder = append(authorOrder, e.AuthorID)
			authorInfos[e.AuthorID] = &AuthorInfo{
				AuthorID:  e.AuthorID,
				Name:      e.Name,
				Bio:       e.Bio,
				BirthDate: e.BirthDate,
				AddedAt:   e.OccurredAt,
			}

		case core.AuthorEdited:
			author := authorInfos[e.AuthorID]
			if author == nil {
				continue
			}
			if e.Name != nil {
				author.Name = *e.Name
			}
			if e.Bio != nil {
				author.Bio = *e.Bio
			}
			if e.BirthDate != nil {
				author.BirthDate = *e.BirthDate
			}

		case core.AuthorRemoved:
			delete(authorInfos, e.AuthorID)
		}
	}

	authorList := make([]AuthorInfo, 0, len(authorInfos))
	for _, authorID := range authorOrder {
		author, exists := authorInfos[authorID]
		if !exists {
			continue
		}

		// A removed and re-added author occurs twice in the order.
		delete(authorInfos, authorID)

		authorList = append(authorList, *author)
	}

	return Authors{
		Authors: authorList,
		Count:   len(authorList),
	}
}

// BuildEventFilter creates the filter for querying all events which are
// relevant for this query.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.AuthorAddedEventType,
			core.AuthorEditedEventType,
			core.AuthorRemovedEventType,
		).
		Finalize()
}
