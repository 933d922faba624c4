package catalog

import "strings"

// Book is one bibliographic record from the external book dump.
type Book struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	ImageURL string `json:"image_url"`
}

// Catalog is loaded once at process start and read-only afterwards, so it is
// safe for concurrent use without locking.
type Catalog struct {
	books    map[string]Book
	byAuthor map[string][]string // author -> isbns, in load order
	order    []string            // isbns, in load order
}

// New builds a catalog from a slice of records. Later records with a
// duplicate ISBN are ignored; the ISBN is assumed unique in the source.
func New(books []Book) *Catalog {
	c := &Catalog{
		books:    make(map[string]Book, len(books)),
		byAuthor: make(map[string][]string),
	}
	for _, b := range books {
		if b.ISBN == "" {
			continue
		}
		if _, ok := c.books[b.ISBN]; ok {
			continue
		}
		c.books[b.ISBN] = b
		c.order = append(c.order, b.ISBN)
		if b.Author != "" {
			c.byAuthor[b.Author] = append(c.byAuthor[b.Author], b.ISBN)
		}
	}
	return c
}

// Get returns the record for an ISBN.
func (c *Catalog) Get(isbn string) (Book, bool) {
	b, ok := c.books[isbn]
	return b, ok
}

// Has reports whether the ISBN exists in the catalog.
func (c *Catalog) Has(isbn string) bool {
	_, ok := c.books[isbn]
	return ok
}

// ByAuthor returns all ISBNs by the given author (exact match).
// Nil for an author with no catalog books.
func (c *Catalog) ByAuthor(author string) []string {
	return c.byAuthor[author]
}

// Search performs a case-insensitive substring match over title and author,
// returning at most limit records in catalog order. limit <= 0 means no cap.
func (c *Catalog) Search(query string, limit int) []Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []Book
	for _, isbn := range c.order {
		b := c.books[isbn]
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) {
			results = append(results, b)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
	}
	return results
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}
