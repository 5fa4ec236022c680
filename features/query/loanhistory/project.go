package loanhistory

import (
	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

type bookJoin struct {
	title    string
	authorID string
}

type loanState struct {
	recordID     string
	bookID       string
	userID       string
	borrowedDate string
	dueDate      string
	returnedDate string
	borrowedAt   core.OccurredAtTS
}

// Project implements the query logic for the loan history.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All book, author, member and loan events in the system
//	WHEN: LoanHistory query is executed
//	THEN: LoanHistory is returned with every loan record, open or closed,
//	      in event order
//	EXCLUDES: Loans whose book, author or member is missing (incomplete joins)
func Project(history core.DomainEvents) LoanHistory {
	books := make(map[string]*bookJoin)
	authorNames := make(map[string]string)
	memberNames := make(map[string]string)
	loans := make(map[string]*loanState)
	loanOrder := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
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

		case core.MemberRegistered:
			memberNames[e.UserID] = e.Name

		case core.MemberEdited:
			if _, exists := memberNames[e.UserID]; exists && e.Name != nil {
				memberNames[e.UserID] = *e.Name
			}

		case core.MemberRemoved:
			delete(memberNames, e.UserID)

		case core.BookBorrowed:
			if _, exists := loans[e.RecordID]; !exists {
				loanOrder = append(loanOrder, e.RecordID)
			}
			loans[e.RecordID] = &loanState{
				recordID:     e.RecordID,
				bookID:       e.BookID,
				userID:       e.UserID,
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

	loanList := make([]LoanInfo, 0, len(loans))

	for _, recordID := range loanOrder {
		loan := loans[recordID]

		book, bookExists := books[loan.bookID]
		if !bookExists {
			continue
		}

		authorName, authorExists := authorNames[book.authorID]
		memberName, memberExists := memberNames[loan.userID]
		if !authorExists || !memberExists {
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
			UserID:       loan.userID,
			MemberName:   memberName,
			BorrowedDate: loan.borrowedDate,
			DueDate:      loan.dueDate,
			ReturnedDate: loan.returnedDate,
			Status:       status,
			BorrowedAt:   loan.borrowedAt,
		})
	}

	return LoanHistory{
		Loans: loanList,
		Count: len(loanList),
	}
}

// BuildEventFilter creates the filter for querying all events which are
// relevant for this query.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedEventType,
			core.BookEditedEventType,
			core.BookRemovedEventType,
			core.AuthorAddedEventType,
			core.AuthorEditedEventType,
			core.AuthorRemovedEventType,
			core.MemberRegisteredEventType,
			core.MemberEditedEventType,
			core.MemberRemovedEventType,
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
		).
		Finalize()
}
