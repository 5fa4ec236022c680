package memberborrows

import "github.com/google/uuid"

// Query carries the member whose loan records should be listed.
type Query struct {
	UserID uuid.UUID
}

// BuildQuery creates a new Query.
func BuildQuery(userID uuid.UUID) Query {
	return Query{UserID: userID}
}
