package addauthor

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "AddAuthor"
)

// Command represents the intent to add a new author to the catalog.
type Command struct {
	AuthorID   uuid.UUID
	Name       string
	Bio        string
	BirthDate  string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Name is required; birthDate must be a YYYY-MM-DD date when supplied.
func BuildCommand(
	authorID uuid.UUID,
	name string,
	bio string,
	birthDate string,
	occurredAt time.Time,
) (Command, error) {

	var v core.FieldValidator
	v.Require("name", name)
	if birthDate != "" {
		v.RequireDate("birthDate", birthDate)
	}
	if err := v.Err(); err != nil {
		return Command{}, err
	}

	return Command{
		AuthorID:   authorID,
		Name:       name,
		Bio:        bio,
		BirthDate:  birthDate,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}, nil
}
