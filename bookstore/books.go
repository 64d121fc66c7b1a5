package bookstore

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// NotAvailable fills cells the API did not provide.
const NotAvailable = "N/A"

const (
	NoBooksFound  = "No books found"
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
	UnknownISBN   = NotAvailable
)

// Book is one entry of a user's collection. Empty fields are treated as absent.
type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN: %s)",
		orDefault(b.Title, UnknownTitle),
		orDefault(b.Author, UnknownAuthor),
		orDefault(b.ISBN, UnknownISBN))
}

// FormatBooks renders books as a single "; " separated cell.
func FormatBooks(books []Book) string {
	if len(books) == 0 {
		return NoBooksFound
	}
	formatted := make([]string, len(books))
	for i, b := range books {
		formatted[i] = b.String()
	}
	return strings.Join(formatted, "; ")
}

// BooksFromJSON reads a "books" array; anything that is not an array yields no books.
func BooksFromJSON(books gjson.Result) []Book {
	if !books.IsArray() {
		return nil
	}
	var result []Book
	for _, v := range books.Array() {
		result = append(result, Book{
			ISBN:   stringOr(v, "isbn", ""),
			Title:  stringOr(v, "title", ""),
			Author: stringOr(v, "author", ""),
		})
	}
	return result
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
