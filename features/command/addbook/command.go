package addbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a new book to the catalog.
type Command struct {
	BookID        uuid.UUID
	Title         string
	AuthorID      core.AuthorIDString
	ISBN          string
	PublishedDate string
	Description   string
	CoverImage    string
	OccurredAt    core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Title and authorID are required. PublishedDate must be a YYYY-MM-DD date
// and coverImage an absolute URL when supplied.
func BuildCommand(
	bookID uuid.UUID,
	title string,
	authorID string,
	isbn string,
	publishedDate string,
	description string,
	coverImage string,
	occurredAt time.Time,
) (Command, error) {

	var v core.FieldValidator
	v.Require("title", title)
	v.Require("authorId", authorID)
	if publishedDate != "" {
		v.RequireDate("publishedDate", publishedDate)
	}
	if coverImage != "" {
		v.RequireURL("coverImage", coverImage)
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
		OccurredAt:    core.ToOccurredAt(occurredAt),
	}, nil
}
