package authors

import (
	"time"

	"github.com/libris-app/libris/core"
)

// AuthorInfo represents one author of the catalog.
type AuthorInfo struct {
	AuthorID  core.AuthorIDString
	Name      string
	Bio       string
	BirthDate string
	AddedAt   time.Time
}

// Authors represents the query result containing all authors.
type Authors struct {
	Authors []AuthorInfo
	Count   int
}
