package loanhistory

import (
	"time"

	"github.com/libris-app/libris/core"
)

// LoanInfo represents one loan record populated with its book, the book's
// author and the borrowing member. ReturnedDate is empty while the loan
// is open.
type LoanInfo struct {
	RecordID     core.RecordIDString
	BookID       core.BookIDString
	BookTitle    string
	AuthorName   string
	UserID       core.UserIDString
	MemberName   string
	BorrowedDate string
	DueDate      string
	ReturnedDate string
	Status       string
	BorrowedAt   time.Time
}

// LoanHistory represents the query result containing all loan records.
type LoanHistory struct {
	Loans []LoanInfo
	Count int
}
