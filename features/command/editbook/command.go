package editbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "EditBook"
)

// Command represents the intent to change a book's catalog fields.
// Nil fields are left untouched. Status is only accepted when it agrees with
// the status derived from the loan ledger.
type Command struct {
	BookID        uuid.UUID
	Title         *string
	AuthorID      *core.AuthorIDString
	ISBN          *string
	PublishedDate *string
	Description   *string
	CoverImage    *string
	Status        *string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID uuid.UUID,
	title *string,
	authorID *string,
	isbn *string,
	publishedDate *string,
	description *string,
	coverImage *string,
	status *string,
	occurredAt time.Time,
) (Command, error) {

	var v core.FieldValidator
	v.OptionalNonEmpty("title", title)
	v.OptionalNonEmpty("authorId", authorID)
	v.OptionalDate("publishedDate", publishedDate)
	v.OptionalURL("coverImage", coverImage)
	if status != nil && *status != core.BookStatusAvailable && *status != core.BookStatusBorrowed {
		v.Invalid("status", "must be one of: "+core.BookStatusAvailable+", "+core.BookStatusBorrowed)
	}
	if err := v.Err(); err != nil {
		return Command{}, err
	}

	return Command{
		BookID:        bookID,
		Title:         title,
		AuthorID:      authorID,
		ISBN:          isbn,
		PublishedDate: publishedDate,
		Description:   description,
		CoverImage:    coverImage,
		Status:        status,
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}, nil
}
