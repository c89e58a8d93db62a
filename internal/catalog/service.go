package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"
	"github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddBook validates in and inserts it with every copy available. Checks run
// in a fixed order and the first violation wins.
func (s *Service) AddBook(ctx context.Context, in NewBook) (AddResult, error) {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)

	switch {
	case title == "":
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "Title is required.")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "Title must be less than 200 characters.")
	case author == "":
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "Author is required.")
	case utf8.RuneCountInString(author) > MaxAuthorLength:
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "Author must be less than 100 characters.")
	case utf8.RuneCountInString(in.ISBN) != ISBNLength:
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "ISBN must be exactly 13 digits.")
	case in.TotalCopies <= 0:
		return AddResult{}, apperr.Validation(apperr.CodeInvalidInput, "Total copies must be a positive integer.")
	}

	if _, err := s.repo.GetByISBN(ctx, in.ISBN); err == nil {
		return AddResult{}, duplicateISBN()
	} else if !errors.Is(err, entity.ErrBookNotFound) {
		return AddResult{}, apperr.Storage("Database error occurred while adding the book.", err)
	}

	book := entity.Book{
		Title:           title,
		Author:          author,
		ISBN:            in.ISBN,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
	}
	if err := s.repo.Insert(ctx, &book); err != nil {
		// lost a race with a concurrent insert of the same ISBN
		if errors.Is(err, entity.ErrDuplicateISBN) {
			return AddResult{}, duplicateISBN()
		}
		return AddResult{}, apperr.Storage("Database error occurred while adding the book.", err)
	}

	return AddResult{
		Book:    book,
		Message: fmt.Sprintf("Book \"%s\" has been successfully added to the catalog.", title),
	}, nil
}

func duplicateISBN() error {
	return apperr.Conflict(apperr.CodeDuplicateISBN, "A book with this ISBN already exists.")
}

func (s *Service) Get(ctx context.Context, id int64) (entity.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrBookNotFound) {
			return entity.Book{}, apperr.NotFound(apperr.CodeBookNotFound, "Book not found.")
		}
		return entity.Book{}, apperr.Storage("Database error occurred while loading the book.", err)
	}
	return book, nil
}

func (s *Service) List(ctx context.Context) ([]entity.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Storage("Database error occurred while listing books.", err)
	}
	return books, nil
}

// Search returns no results for a blank term or an unknown field.
func (s *Service) Search(ctx context.Context, term string, field SearchField) ([]entity.Book, error) {
	term = strings.TrimSpace(term)
	if term == "" || !field.Valid() {
		return []entity.Book{}, nil
	}

	books, err := s.repo.Search(ctx, SearchQuery{Term: term, Field: field})
	if err != nil {
		return nil, apperr.Storage("Database error occurred while searching the catalog.", err)
	}
	return books, nil
}
