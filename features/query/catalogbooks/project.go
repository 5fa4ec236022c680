package catalogbooks

import (
	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/eventstore"
)

type bookState struct {
	bookID        string
	title         string
	authorID      string
	isbn          string
	publishedDate string
	description   string
	coverImage    string
	borrowed      bool
	addedAt       core.OccurredAtTS
}

type authorState struct {
	name      string
	bio       string
	birthDate string
	removed   bool
}

// Project implements the query logic for the book catalog.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All book, author and loan events in the system
//	WHEN: CatalogBooks query is executed
//	THEN: CatalogBooks is returned with every book populated with its author
//	EXCLUDES: Books that have been removed
//	DETAILS: Dangling author references render the Unknown Author placeholder;
//	         status derives from the loan ledger
func Project(history core.DomainEvents) CatalogBooks {
	books := make(map[string]*bookState)
	authors := make(map[string]*authorState)
	bookOrder := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAdded:
			bookOrder = append(bookOrder, e.BookID)
			books[e.BookID] = &bookState{
				bookID:        e.BookID,
				title:         e.Title,
				authorID:      e.AuthorID,
				isbn:          e.ISBN,
				publishedDate: e.PublishedDate,
				description:   e.Description,
				coverImage:    e.CoverImage,
				addedAt:       e.OccurredAt,
			}

		case core.BookEdited:
			book := books[e.BookID]
			if book == nil {
				continue
			}
			applyBookEdit(book, e)

		case core.BookRemoved:
			delete(books, e.BookID)

		case core.BookBorrowed:
			if book := books[e.BookID]; book != nil {
				book.borrowed = true
			}

		case core.BookReturned:
			if book := books[e.BookID]; book != nil {
				book.borrowed = false
			}

		case core.AuthorAdded:
			authors[e.AuthorID] = &authorState{
				name:      e.Name,
				bio:       e.Bio,
				birthDate: e.BirthDate,
			}

		case core.AuthorEdited:
			author := authors[e.AuthorID]
			if author == nil || author.removed {
				continue
			}
			applyAuthorEdit(author, e)

		case core.AuthorRemoved:
			// Keep the author entry so earlier state cannot resurface,
			// but mark it gone for the placeholder substitution.
			if author := authors[e.AuthorID]; author != nil {
				author.removed = true
			}
		}
	}

	bookList := make([]BookInfo, 0, len(books))
	for _, bookID := range bookOrder {
		book, exists := books[bookID]
		if !exists {
			continue
		}

		// A removed and re-added book occurs twice in the order.
		delete(books, bookID)

		bookList = append(bookList, populate(book, authors))
	}

	return CatalogBooks{
		Books: bookList,
		Count: len(bookList),
	}
}

func applyBookEdit(book *bookState, e core.BookEdited) {
	if e.Title != nil {
		book.title = *e.Title
	}
	if e.AuthorID != nil {
		book.authorID = *e.AuthorID
	}
	if e.ISBN != nil {
		book.isbn = *e.ISBN
	}
	if e.PublishedDate != nil {
		book.publishedDate = *e.PublishedDate
	}
	if e.Description != nil {
		book.description = *e.Description
	}
	if e.CoverImage != nil {
		book.coverImage = *e.CoverImage
	}
}

func applyAuthorEdit(author *authorState, e core.AuthorEdited) {
	if e.Name != nil {
		author.name = *e.Name
	}
	if e.Bio != nil {
		author.bio = *e.Bio
	}
	if e.BirthDate != nil {
		author.birthDate = *e.BirthDate
	}
}

func populate(book *bookState, authors map[string]*authorState) BookInfo {
	authorInfo := unknownAuthor()
	if author, ok := authors[book.authorID]; ok && !author.removed {
		authorInfo = AuthorInfo{
			AuthorID:  book.authorID,
			Name:      author.name,
			Bio:       author.bio,
			BirthDate: author.birthDate,
		}
	}

	status := core.BookStatusAvailable
	if book.borrowed {
		status = core.BookStatusBorrowed
	}

	return BookInfo{
		BookID:        book.bookID,
		Title:         book.title,
		Author:        authorInfo,
		ISBN:          book.isbn,
		PublishedDate: book.publishedDate,
		Description:   book.description,
		CoverImage:    book.coverImage,
		Status:        status,
		AddedAt:       book.addedAt,
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
			core.BookBorrowedEventType,
			core.BookReturnedEventType,
			core.AuthorAddedEventType,
			core.AuthorEditedEventType,
			core.AuthorRemovedEventType,
		).
		Finalize()
}
