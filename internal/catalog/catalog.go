package catalog

import "github.com/gregory-ai/cisc327-library-management-a2-3975/internal/entity"

const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
	ISBNLength      = 13
)

// SearchField selects which book attribute a search term is matched against.
type SearchField string

const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchByISBN   SearchField = "isbn"
)

func (f SearchField) Valid() bool {
	switch f {
	case SearchByTitle, SearchByAuthor, SearchByISBN:
		return true
	}
	return false
}

// SearchQuery matches title and author as case-insensitive substrings and
// ISBN exactly.
type SearchQuery struct {
	Term  string
	Field SearchField
}

type NewBook struct {
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

type AddResult struct {
	Book    entity.Book `json:"book"`
	Message string      `json:"message"`
}
