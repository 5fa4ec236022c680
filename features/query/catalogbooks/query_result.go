package catalogbooks

import (
	"time"

	"github.com/libris-app/libris/core"
)

// AuthorInfo represents the author embedded in a populated book.
type AuthorInfo struct {
	AuthorID  core.AuthorIDString
	Name      string
	Bio       string
	BirthDate string
}

// BookInfo represents one populated book of the catalog.
type BookInfo struct {
	BookID        core.BookIDString
	Title         string
	Author        AuthorInfo
	ISBN          string
	PublishedDate string
	Description   string
	CoverImage    string
	Status        string
	AddedAt       time.Time
}

// CatalogBooks represents the query result containing all populated books.
type CatalogBooks struct {
	Books []BookInfo
	Count int
}

// unknownAuthor is the placeholder substituted for dangling author references.
func unknownAuthor() AuthorInfo {
	return AuthorInfo{
		AuthorID: core.UnknownAuthorID,
		Name:     core.UnknownAuthorName,
	}
}
