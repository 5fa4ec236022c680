package members

import (
	"time"

	"github.com/libris-app/libris/core"
)

// MemberInfo represents one registered library member.
type MemberInfo struct {
	UserID       core.UserIDString
	Name         string
	Email        string
	MemberSince  string
	RegisteredAt time.Time
}

// Members represents the query result containing all members.
type Members struct {
	Members []MemberInfo
	Count   int
}
