package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/borrowbook"
	"github.com/libris-app/libris/features/command/returnbook"
)

type borrowBookRequest struct {
	BookID       string `json:"bookId"`
	UserID       string `json:"userId"`
	BorrowedDate string `json:"borrowedDate"`
}

type returnBookRequest struct {
	ReturnedDate string `json:"returnedDate"`
}

type loanData struct {
	RecordID     string `json:"recordId"`
	BookID       string `json:"bookId"`
	BookTitle    string `json:"bookTitle,omitempty"`
	AuthorName   string `json:"authorName,omitempty"`
	UserID       string `json:"userId"`
	MemberName   string `json:"memberName,omitempty"`
	BorrowedDate string `json:"borrowedDate"`
	DueDate      string `json:"dueDate"`
	ReturnedDate string `json:"returnedDate,omitempty"`
	Status       string `json:"status"`
}

func (a *API) handleBorrowBook(w http.ResponseWriter, r *http.Request) {
	var req borrowBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		jsonBadRequest(w, "bookId must be a UUID")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		jsonBadRequest(w, "userId must be a UUID")
		return
	}

	now := a.clock()

	borrowedDate := now
	if req.BorrowedDate != "" {
		borrowedDate, err = time.Parse(core.DateLayout, req.BorrowedDate)
		if err != nil {
			jsonBadRequest(w, "borrowedDate must be a date in format "+core.DateLayout)
			return
		}
	}

	command := borrowbook.BuildCommand(a.newID(), bookID, userID, borrowedDate, now)

	event, err := a.borrowBook.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	data := loanData{
		RecordID:     event.RecordID,
		BookID:       event.BookID,
		UserID:       event.UserID,
		BorrowedDate: event.BorrowedDate,
		DueDate:      event.DueDate,
		Status:       core.LoanStatusOnLoan,
	}

	jsonSuccessCreated(w, data)
	a.publish("loan.borrowed", data)
}

func (a *API) handleReturnBook(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	// The body is optional, a bare POST returns the loan today.
	var req returnBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	now := a.clock()

	returnedDate := now
	if req.ReturnedDate != "" {
		var err error

		returnedDate, err = time.Parse(core.DateLayout, req.ReturnedDate)
		if err != nil {
			jsonBadRequest(w, "returnedDate must be a date in format "+core.DateLayout)
			return
		}
	}

	command := returnbook.BuildCommand(recordID, returnedDate, now)

	event, err := a.returnBook.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	data := loanData{
		RecordID:     event.RecordID,
		BookID:       event.BookID,
		UserID:       event.UserID,
		ReturnedDate: event.ReturnedDate,
		Status:       core.LoanStatusReturned,
	}

	jsonSuccess(w, data)
	a.publish("loan.returned", data)
}

func (a *API) handleActiveLoans(w http.ResponseWriter, r *http.Request) {
	result, err := a.activeLoans.Handle(r.Context())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	loanList := make([]loanData, 0, len(result.Loans))
	for _, loan := range result.Loans {
		loanList = append(loanList, loanData{
			RecordID:     loan.RecordID,
			BookID:       loan.BookID,
			BookTitle:    loan.BookTitle,
			AuthorName:   loan.AuthorName,
			UserID:       loan.UserID,
			MemberName:   loan.MemberName,
			BorrowedDate: loan.BorrowedDate,
			DueDate:      loan.DueDate,
			Status:       loan.Status,
		})
	}

	jsonSuccess(w, map[string]any{
		"loans": loanList,
		"count": result.Count,
	})
}

func (a *API) handleLoanHistory(w http.ResponseWriter, r *http.Request) {
	result, err := a.loanHistory.Handle(r.Context())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	loanList := make([]loanData, 0, len(result.Loans))
	for _, loan := range result.Loans {
		loanList = append(loanList, loanData{
			RecordID:     loan.RecordID,
			BookID:       loan.BookID,
			BookTitle:    loan.BookTitle,
			AuthorName:   loan.AuthorName,
			UserID:       loan.UserID,
			MemberName:   loan.MemberName,
			BorrowedDate: loan.BorrowedDate,
			DueDate:      loan.DueDate,
			ReturnedDate: loan.ReturnedDate,
			Status:       loan.Status,
		})
	}

	jsonSuccess(w, map[string]any{
		"loans": loanList,
		"count": result.Count,
	})
}
