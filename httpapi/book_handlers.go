package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/libris-app/libris/core"
	"github.com/libris-app/libris/features/command/addbook"
	"github.com/libris-app/libris/features/command/editbook"
	"github.com/libris-app/libris/features/command/removebook"
)

type addBookRequest struct {
	Title         string `json:"title"`
	AuthorID      string `json:"authorId"`
	ISBN          string `json:"isbn"`
	PublishedDate string `json:"publishedDate"`
	Description   string `json:"description"`
	CoverImage    string `json:"coverImage"`
}

type editBookRequest struct {
	Title         *string `json:"title"`
	AuthorID      *string `json:"authorId"`
	ISBN          *string `json:"isbn"`
	PublishedDate *string `json:"publishedDate"`
	Description   *string `json:"description"`
	CoverImage    *string `json:"coverImage"`
	Status        *string `json:"status"`
}

type bookAuthorData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}

type bookData struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Author        bookAuthorData `json:"author"`
	ISBN          string         `json:"isbn,omitempty"`
	PublishedDate string         `json:"publishedDate,omitempty"`
	Description   string         `json:"description,omitempty"`
	CoverImage    string         `json:"coverImage,omitempty"`
	Status        string         `json:"status"`
	AddedAt       time.Time      `json:"addedAt"`
}

func (a *API) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := addbook.BuildCommand(
		a.newID(),
		req.Title,
		req.AuthorID,
		req.ISBN,
		req.PublishedDate,
		req.Description,
		req.CoverImage,
		a.clock(),
	)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.addBook.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	data := bookData{
		ID:            event.BookID,
		Title:         event.Title,
		Author:        bookAuthorData{ID: event.AuthorID},
		ISBN:          event.ISBN,
		PublishedDate: event.PublishedDate,
		Description:   event.Description,
		CoverImage:    event.CoverImage,
		Status:        core.BookStatusAvailable,
		AddedAt:       event.OccurredAt,
	}

	jsonSuccessCreated(w, data)
	a.publish("book.added", data)
}

func (a *API) handleEditBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req editBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonBadRequest(w, "invalid JSON body")
		return
	}

	command, err := editbook.BuildCommand(
		bookID,
		req.Title,
		req.AuthorID,
		req.ISBN,
		req.PublishedDate,
		req.Description,
		req.CoverImage,
		req.Status,
		a.clock(),
	)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	event, err := a.editBook.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccess(w, map[string]string{"id": event.BookID})
	a.publish("book.edited", map[string]string{"id": event.BookID})
}

func (a *API) handleRemoveBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	command := removebook.BuildCommand(bookID, a.clock())

	event, err := a.removeBook.Handle(r.Context(), command)
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	jsonSuccessNoContent(w)
	a.publish("book.removed", map[string]string{"id": event.BookID})
}

func (a *API) handleListBooks(w http.ResponseWriter, r *http.Request) {
	result, err := a.catalogBooks.Handle(r.Context())
	if err != nil {
		jsonDomainError(w, err)
		return
	}

	bookList := make([]bookData, 0, len(result.Books))
	for _, book := range result.Books {
		bookList = append(bookList, bookData{
			ID:    book.BookID,
			Title: book.Title,
			Author: bookAuthorData{
				ID:        book.Author.AuthorID,
				Name:      book.Author.Name,
				Bio:       book.Author.Bio,
				BirthDate: book.Author.BirthDate,
			},
			ISBN:          book.ISBN,
			PublishedDate: book.PublishedDate,
			Description:   book.Description,
			CoverImage:    book.CoverImage,
			Status:        book.Status,
			AddedAt:       book.AddedAt,
		})
	}

	jsonSuccess(w, map[string]any{
		"books": bookList,
		"count": result.Count,
	})
}
