package memberborrows

import (
	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"

	"github.com/google/uuid"
)

type bookJoin struct {
	title    string
	authorID string
}

type loanState struct {
	recordID     string
	bookID       string
	borrowedDate string
	dueDate      string
	returnedDate string
	borrowedAt   core.OccurredAtTS
}

// Project implements the query logic for the loan records of a single member.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The member's events, their loan events and all book and author events
//	WHEN: MemberBorrows query is executed
//	THEN: MemberBorrows is returned with the member's loans, open or closed,
//	      in event order
//	ERROR: NotFoundError when the member was never registered or was removed
//	EXCLUDES: Loans whose book or author is missing (incomplete joins)
func Project(history core.DomainEvents, query Query) (MemberBorrows, error) {
	userID := query.UserID.String()

	memberName := ""
	memberExists := false
	books := make(map[string]*bookJoin)
	authorNames := make(map[string]string)
	loans := make(map[string]*loanState)
	loanOrder := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.MemberRegistered:
			memberName = e.Name
			memberExists = true

		case core.MemberEdited:
			if memberExists && e.Name != nil {
				memberName = *e.Name
			}

		case core.MemberRemoved:
			memberExists = false

		case core.BookAdded:
			books[e.BookID] = &bookJoin{title: e.Title, authorID: e.AuthorID}

		case core.BookEdited:
			if book := books[e.BookID]; book != nil {
				if e.Title != nil {
					book.title = *e.Title
				}
				if e.AuthorID != nil {
					book.authorID = *e.AuthorID
				}
			}

		case core.BookRemoved:
			delete(books, e.BookID)

		case core.AuthorAdded:
			authorNames[e.AuthorID] = e.Name

		case core.AuthorEdited:
			if _, exists := authorNames[e.AuthorID]; exists && e.Name != nil {
				authorNames[e.AuthorID] = *e.Name
			}

		case core.AuthorRemoved:
			delete(authorNames, e.AuthorID)

		case core.BookBorrowed:
			if _, exists := loans[e.RecordID]; !exists {
				loanOrder = append(loanOrder, e.RecordID)
			}
			loans[e.RecordID] = &loanState{
				recordID:     e.RecordID,
				bookID:       e.BookID,
				borrowedDate: e.BorrowedDate,
				dueDate:      e.DueDate,
				borrowedAt:   e.OccurredAt,
			}

		case core.BookReturned:
			if loan := loans[e.RecordID]; loan != nil {
				loan.returnedDate = e.ReturnedDate
			}
		}
	}

	if !memberExists {
		return MemberBorrows{}, core.NotFoundError{Kind: "member", ID: userID}
	}

	loanList := make([]LoanInfo, 0, len(loans))

	for _, recordID := range loanOrder {
		loan := loans[recordID]

		book, bookExists := books[loan.bookID]
		if !bookExists {
			continue
		}

		authorName, authorExists := authorNames[book.authorID]
		if !authorExists {
			continue
		}

		status := core.LoanStatusOnLoan
		if loan.returnedDate != "" {
			status = core.LoanStatusReturned
		}

		loanList = append(loanList, LoanInfo{
			RecordID:     loan.recordID,
			BookID:       loan.bookID,
			BookTitle:    book.title,
			AuthorName:   authorName,
			BorrowedDate: loan.borrowedDate,
			DueDate:      loan.dueDate,
			ReturnedDate: loan.returnedDate,
			Status:       status,
			BorrowedAt:   loan.borrowedAt,
		})
	}

	return MemberBorrows{
		UserID:     userID,
		MemberName: memberName,
		Loans:      loanList,
		Count:      len(loanList),
	}, nil
}

// BuildEventFilter creates the filter for querying all events which are
// relevant for this query. The member's own events and their loan events
// are narrowed by UserID, the book and author events are needed in full
// for the join.
func BuildEventFilter(userID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.MemberRegisteredEventType,
			core.MemberEditedEventType,
			core.MemberRemovedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("UserID", userID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.BookAddedEventType,
			core.BookEditedEventType,
			core.BookRemovedEventType,
			core.AuthorAddedEventType,
			core.AuthorEditedEventType,
			core.AuthorRemovedEventType,
		).
		Finalize()
}
