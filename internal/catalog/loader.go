package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Column headers of the BX-Books dump.
const (
	colISBN   = "ISBN"
	colTitle  = "Book-Title"
	colAuthor = "Book-Author"
	colYear   = "Year-Of-Publication"
	colImage  = "Image-URL-L"
)

// LoadCSV reads a BX-Books style dump: semicolon-separated, Latin-1 encoded,
// with a header row. Rows missing an ISBN or title are skipped; an
// unparseable year is kept as 0 rather than dropping the record.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	books, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(books), nil
}

func parseCSV(r io.Reader) ([]Book, error) {
	// The dump is Latin-1; decode before the csv reader sees it.
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colISBN, colTitle, colAuthor} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var books []Book
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate the occasional malformed row in the dump.
			continue
		}

		b := Book{
			ISBN:   field(record, cols, colISBN),
			Title:  field(record, cols, colTitle),
			Author: field(record, cols, colAuthor),
		}
		if b.ISBN == "" || b.Title == "" {
			continue
		}
		if y, err := strconv.Atoi(field(record, cols, colYear)); err == nil {
			b.Year = y
		}
		b.ImageURL = field(record, cols, colImage)
		books = append(books, b)
	}
	return books, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
