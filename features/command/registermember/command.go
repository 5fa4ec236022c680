package registermember

import (
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
)

const (
	commandType = "RegisterMember"
)

// Command represents the intent to register a new library member.
type Command struct {
	UserID      uuid.UUID
	Name        string
	Email       string
	MemberSince string
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
// Name and email are required; email must parse as an address but uniqueness
// is not enforced. An empty memberSince defaults to the occurredAt date.
func BuildCommand(
	userID uuid.UUID,
	name string,
	email string,
	memberSince string,
	occurredAt time.Time,
) (Command, error) {

	var v core.FieldValidator
	v.Require("name", name)
	v.RequireEmail("email", email)
	if memberSince != "" {
		v.RequireDate("memberSince", memberSince)
	}
	if err := v.Err(); err != nil {
		return Command{}, err
	}

	if memberSince == "" {
		memberSince = occurredAt.UTC().Format(core.DateLayout)
	}

	return Command{
		UserID:      userID,
		Name:        name,
		Email:       email,
		MemberSince: memberSince,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}, nil
}
