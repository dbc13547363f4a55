package category

// Category groups books. BooksCount is a derived counter maintained by
// the backend; it is not recomputed when books mutate.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BooksCount  int    `json:"booksCount"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
