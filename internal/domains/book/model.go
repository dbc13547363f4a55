package book

// CategoryRef is a denormalized category snapshot carried on a book.
// A category rename does NOT propagate into these until the book is
// refetched from the store.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Book is the catalog entity.
type Book struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	ISBN          string        `json:"isbn"`
	Description   string        `json:"description"`
	Publisher     string        `json:"publisher"`
	PublishedDate string        `json:"publishedDate"`
	Categories    []CategoryRef `json:"categories"`
	CoverImage    string        `json:"coverImage"`
	Rating        float64       `json:"rating,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
}
