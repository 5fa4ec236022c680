package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/libris-app/libris/features/command/addauthor"
	"github.com/libris-app/libris/features/command/addbook"
	"github.com/libris-app/libris/features/command/borrowbook"
	"github.com/libris-app/libris/features/command/registermember"
	"github.com/libris-app/libris/features/command/returnbook"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with sample authors, books, members and loans",
	RunE:  runSeed,
}

type seedAuthor struct {
	name      string
	bio       string
	birthDate string
}

type seedBook struct {
	title         string
	author        string
	isbn          string
	publishedDate string
	description   string
}

type seedMember struct {
	name        string
	email       string
	memberSince string
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	deps, err := a.buildDependencies()
	if err != nil {
		return err
	}

	now := time.Now()

	authorSeeds := []seedAuthor{
		{"George Orwell", "English novelist and essayist.", "1903-06-25"},
		{"Ursula K. Le Guin", "American author of speculative fiction.", "1929-10-21"},
		{"Gabriel García Márquez", "Colombian novelist, Nobel laureate.", "1927-03-06"},
		{"Octavia E. Butler", "American science fiction author.", "1947-06-22"},
	}

	authorIDs := make([]string, 0, len(authorSeeds))

	for _, seed := range authorSeeds {
		command, buildErr := addauthor.BuildCommand(uuid.New(), seed.name, seed.bio, seed.birthDate, now)
		if buildErr != nil {
			return buildErr
		}

		event, handleErr := deps.AddAuthor.Handle(ctx, command)
		if handleErr != nil {
			return fmt.Errorf("seed author %q: %w", seed.name, handleErr)
		}

		authorIDs = append(authorIDs, event.AuthorID)
	}

	bookSeeds := []struct {
		seedBook
		authorIdx int
	}{
		{seedBook{"1984", "", "9780451524935", "1949-06-08", "Dystopian classic."}, 0},
		{seedBook{"Animal Farm", "", "9780451526342", "1945-08-17", "Satirical allegory."}, 0},
		{seedBook{"A Wizard of Earthsea", "", "9780547773742", "1968-11-01", "First Earthsea novel."}, 1},
		{seedBook{"The Left Hand of Darkness", "", "9780441478125", "1969-03-01", "Hainish cycle novel."}, 1},
		{seedBook{"One Hundred Years of Solitude", "", "9780060883287", "1967-05-30", "Magical realism saga."}, 2},
		{seedBook{"Kindred", "", "9780807083695", "1979-06-01", "Time travel novel."}, 3},
		{seedBook{"Parable of the Sower", "", "9780446675505", "1993-10-01", "Near-future dystopia."}, 3},
	}

	bookIDs := make([]string, 0, len(bookSeeds))

	for _, seed := range bookSeeds {
		command, buildErr := addbook.BuildCommand(
			uuid.New(), seed.title, authorIDs[seed.authorIdx], seed.isbn,
			seed.publishedDate, seed.description, "", now,
		)
		if buildErr != nil {
			return buildErr
		}

		event, handleErr := deps.AddBook.Handle(ctx, command)
		if handleErr != nil {
			return fmt.Errorf("seed book %q: %w", seed.title, handleErr)
		}

		bookIDs = append(bookIDs, event.BookID)
	}

	memberSeeds := []seedMember{
		{"Ada Lovelace", "ada@example.com", "2024-01-15"},
		{"Alan Turing", "alan@example.com", "2024-03-02"},
		{"Grace Hopper", "grace@example.com", "2025-07-20"},
	}

	memberIDs := make([]string, 0, len(memberSeeds))

	for _, seed := range memberSeeds {
		command, buildErr := registermember.BuildCommand(uuid.New(), seed.name, seed.email, seed.memberSince, now)
		if buildErr != nil {
			return buildErr
		}

		event, handleErr := deps.RegisterMember.Handle(ctx, command)
		if handleErr != nil {
			return fmt.Errorf("seed member %q: %w", seed.name, handleErr)
		}

		memberIDs = append(memberIDs, event.UserID)
	}

	loanSeeds := []struct {
		bookIdx   int
		memberIdx int
		returned  bool
	}{
		{0, 0, false},
		{2, 1, false},
		{5, 2, false},
		{4, 0, true},
	}

	for _, seed := range loanSeeds {
		recordID := uuid.New()

		if err = seedLoan(ctx, deps.BorrowBook, deps.ReturnBook, recordID,
			bookIDs[seed.bookIdx], memberIDs[seed.memberIdx], now, seed.returned); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d authors, %d books, %d members, %d loans\n",
		len(authorIDs), len(bookIDs), len(memberIDs), len(loanSeeds))

	return nil
}

func seedLoan(
	ctx context.Context,
	borrow borrowbook.CommandHandler,
	returnHandler returnbook.CommandHandler,
	recordID uuid.UUID,
	bookID string,
	userID string,
	now time.Time,
	returned bool,
) error {
	parsedBookID, err := uuid.Parse(bookID)
	if err != nil {
		return err
	}

	parsedUserID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	borrowedDate := now.AddDate(0, 0, -7)

	borrowCommand := borrowbook.BuildCommand(recordID, parsedBookID, parsedUserID, borrowedDate, now)
	if _, err = borrow.Handle(ctx, borrowCommand); err != nil {
		return fmt.Errorf("seed loan for book %s: %w", bookID, err)
	}

	if !returned {
		return nil
	}

	returnCommand := returnbook.BuildCommand(recordID, now, now)
	if _, err = returnHandler.Handle(ctx, returnCommand); err != nil {
		return fmt.Errorf("seed return for record %s: %w", recordID, err)
	}

	return nil
}
