package editmember

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "EditMember"
)

// Command represents the intent to change a member's fields.
// Nil fields are left untouched.
type Command struct {
	UserID     uuid.UUID
	Name       *string
	Email      *string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	userID uuid.UUID,
	name *string,
	email *string,
	occurredAt time.Time,
) (Command, error) {

	var v core.FieldValidator
	v.OptionalNonEmpty("name", name)
	v.OptionalEmail("email", email)
	if err := v.Err(); err != nil {
		return Command{}, err
	}

	return Command{
		UserID:     userID,
		Name:       name,
		Email:      email,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}, nil
}
