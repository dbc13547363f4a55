package mockapi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/domains/dashboard"
	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/domains/user"
	"bookadmin-backend/internal/shared/apierr"
)

// Per-operation simulated latencies. The exact values only matter as a
// non-zero async boundary; they mirror what a small remote API feels
// like in development.
var latencies = map[string]time.Duration{
	"login":           800 * time.Millisecond,
	"books.list":      600 * time.Millisecond,
	"books.get":       400 * time.Millisecond,
	"books.create":    800 * time.Millisecond,
	"books.update":    800 * time.Millisecond,
	"books.delete":    600 * time.Millisecond,
	"books.batch":     800 * time.Millisecond,
	"books.restore":   800 * time.Millisecond,
	"categories.list": 400 * time.Millisecond,
	"categories.get":  300 * time.Millisecond,
	"categories.save": 600 * time.Millisecond,
	"categories.del":  500 * time.Millisecond,
	"users.list":      500 * time.Millisecond,
	"users.get":       300 * time.Millisecond,
	"users.update":    600 * time.Millisecond,
	"users.delete":    500 * time.Millisecond,
	"dashboard.stats": 700 * time.Millisecond,
	"settings.get":    400 * time.Millisecond,
	"settings.update": 600 * time.Millisecond,
	"uploads.create":  1000 * time.Millisecond,
	"uploads.list":    600 * time.Millisecond,
	"uploads.delete":  700 * time.Millisecond,
}

// Client is the stand-in for a remote service: every operation waits a
// simulated latency, then reads or mutates the Store, and fails with a
// structured *apierr.Error.
type Client struct {
	store        *Store
	latencyScale float64
}

// NewClient wires a client to a store. latencyScale multiplies every
// simulated delay; pass 0 to disable the delays (tests do).
func NewClient(store *Store, latencyScale float64) *Client {
	return &Client{store: store, latencyScale: latencyScale}
}

// wait suspends for the operation's simulated latency. Context
// cancellation aborts the wait; there is no other cancellation path.
func (c *Client) wait(ctx context.Context, op string) error {
	d := time.Duration(float64(latencies[op]) * c.latencyScale)
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// ----------------------------------------
// AUTH
// ----------------------------------------

// Login verifies the seeded admin credential.
func (c *Client) Login(ctx context.Context, credentials auth.Credentials) (*auth.SessionUser, error) {
	if err := c.wait(ctx, "login"); err != nil {
		return nil, err
	}
	admin := c.store.AdminUser()
	if credentials.Email != admin.Email {
		return nil, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.store.AdminPasswordHash(), []byte(credentials.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	return &admin, nil
}

// ----------------------------------------
// BOOKS
// ----------------------------------------

func (c *Client) ListBooks(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error) {
	if err := c.wait(ctx, "books.list"); err != nil {
		return nil, err
	}
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	filtered := c.store.Books()

	if req.Search != "" {
		matched := filtered[:0]
		for _, b := range filtered {
			if containsFold(b.Title, req.Search) || containsFold(b.Author, req.Search) {
				matched = append(matched, b)
			}
		}
		filtered = matched
	}

	if req.Category != "" {
		matched := filtered[:0]
		for _, b := range filtered {
			for _, ref := range b.Categories {
				if ref.ID == req.Category {
					matched = append(matched, b)
					break
				}
			}
		}
		filtered = matched
	}

	if req.SortBy != "" {
		sortByField(filtered, bookSortKey(req.SortBy), req.SortOrder == "desc")
	}

	return &book.ListBooksResult{
		Books: paginate(filtered, req.Page, req.Limit),
		Total: len(filtered),
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func bookSortKey(sortBy string) func(book.Book) string {
	switch sortBy {
	case "author":
		return func(b book.Book) string { return b.Author }
	case "publisher":
		return func(b book.Book) string { return b.Publisher }
	case "publishedDate":
		return func(b book.Book) string { return b.PublishedDate }
	default:
		return func(b book.Book) string { return b.Title }
	}
}

func (c *Client) GetBook(ctx context.Context, id string) (*book.Book, error) {
	if err := c.wait(ctx, "books.get"); err != nil {
		return nil, err
	}
	b, ok := c.store.BookByID(id)
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (c *Client) CreateBook(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if err := c.wait(ctx, "books.create"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	b := book.Book{
		ID:            c.store.NextBookID(),
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		Categories:    req.Categories,
		CoverImage:    req.CoverImage,
		Rating:        req.Rating,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	c.store.InsertBook(b)
	return &b, nil
}

func (c *Client) UpdateBook(ctx context.Context, id string, req book.UpdateBookRequest) (*book.Book, error) {
	if err := c.wait(ctx, "books.update"); err != nil {
		return nil, err
	}
	existing, ok := c.store.BookByID(id)
	if !ok {
		return nil, book.ErrBookNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	// Full replace of the editable fields; identity and createdAt survive.
	updated := book.Book{
		ID:            existing.ID,
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Description:   req.Description,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		Categories:    req.Categories,
		CoverImage:    req.CoverImage,
		Rating:        req.Rating,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	c.store.SaveBook(updated)
	return &updated, nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) (*book.DeleteSummary, error) {
	if err := c.wait(ctx, "books.delete"); err != nil {
		return nil, err
	}
	removed := c.store.RemoveBooks([]string{id})
	if len(removed) == 0 {
		return nil, book.ErrBookNotFound
	}
	return &book.DeleteSummary{
		Success:   true,
		DeletedID: id,
		Message:   "Book deleted successfully",
	}, nil
}

func (c *Client) BatchDeleteBooks(ctx context.Context, ids []string) (*book.BatchDeleteSummary, error) {
	if err := c.wait(ctx, "books.batch"); err != nil {
		return nil, err
	}
	if err := (book.BatchDeleteRequest{IDs: ids}).Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}
	removed := c.store.RemoveBooks(ids)
	return &book.BatchDeleteSummary{
		Success:      true,
		DeletedCount: len(removed),
		DeletedIDs:   removed,
		Message:      fmt.Sprintf("Successfully deleted %d books", len(removed)),
	}, nil
}

func (c *Client) RestoreBooks(ctx context.Context, ids []string) (*book.RestoreSummary, error) {
	if err := c.wait(ctx, "books.restore"); err != nil {
		return nil, err
	}
	restored := c.store.RestoreBooks(ids)
	return &book.RestoreSummary{
		Success:       true,
		RestoredCount: restored,
		Message:       fmt.Sprintf("Successfully restored %d books", restored),
	}, nil
}

// ----------------------------------------
// CATEGORIES
// ----------------------------------------

func (c *Client) ListCategories(ctx context.Context, req category.ListCategoriesRequest) (*category.ListCategoriesResult, error) {
	if err := c.wait(ctx, "categories.list"); err != nil {
		return nil, err
	}
	req.SetDefaults()

	all := c.store.Categories()
	return &category.ListCategoriesResult{
		Categories: paginate(all, req.Page, req.Limit),
		Total:      len(all),
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}

// ListAllCategories backs the filter dropdown: the whole collection,
// no pagination.
func (c *Client) ListAllCategories(ctx context.Context) ([]category.Category, error) {
	if err := c.wait(ctx, "categories.list"); err != nil {
		return nil, err
	}
	return c.store.Categories(), nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*category.Category, error) {
	if err := c.wait(ctx, "categories.get"); err != nil {
		return nil, err
	}
	cat, ok := c.store.CategoryByID(id)
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, req category.SaveCategoryRequest) (*category.Category, error) {
	if err := c.wait(ctx, "categories.save"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	cat := category.Category{
		ID:          c.store.NextCategoryID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	c.store.InsertCategory(cat)
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req category.SaveCategoryRequest) (*category.Category, error) {
	if err := c.wait(ctx, "categories.save"); err != nil {
		return nil, err
	}
	existing, ok := c.store.CategoryByID(id)
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	c.store.SaveCategory(existing)
	return &existing, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (*category.DeleteSummary, error) {
	if err := c.wait(ctx, "categories.del"); err != nil {
		return nil, err
	}
	if !c.store.RemoveCategory(id) {
		return nil, category.ErrCategoryNotFound
	}
	return &category.DeleteSummary{
		Success:   true,
		DeletedID: id,
		Message:   "Category deleted successfully",
	}, nil
}

// ----------------------------------------
// USERS
// ----------------------------------------

func (c *Client) ListUsers(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResult, error) {
	if err := c.wait(ctx, "users.list"); err != nil {
		return nil, err
	}
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	filtered := c.store.Users()

	if req.Search != "" {
		matched := filtered[:0]
		for _, u := range filtered {
			if containsFold(u.Name, req.Search) || containsFold(u.Email, req.Search) {
				matched = append(matched, u)
			}
		}
		filtered = matched
	}

	if req.Role != "" {
		matched := filtered[:0]
		for _, u := range filtered {
			if string(u.Role) == req.Role {
				matched = append(matched, u)
			}
		}
		filtered = matched
	}

	if req.Status != "" {
		matched := filtered[:0]
		for _, u := range filtered {
			if string(u.Status) == req.Status {
				matched = append(matched, u)
			}
		}
		filtered = matched
	}

	if req.SortBy != "" {
		sortByField(filtered, userSortKey(req.SortBy), req.SortOrder == "desc")
	}

	return &user.ListUsersResult{
		Users: paginate(filtered, req.Page, req.Limit),
		Total: len(filtered),
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func userSortKey(sortBy string) func(user.User) string {
	switch sortBy {
	case "email":
		return func(u user.User) string { return u.Email }
	case "createdAt":
		return func(u user.User) string { return u.CreatedAt }
	default:
		return func(u user.User) string { return u.Name }
	}
}

func (c *Client) GetUser(ctx context.Context, id string) (*user.User, error) {
	if err := c.wait(ctx, "users.get"); err != nil {
		return nil, err
	}
	u, ok := c.store.UserByID(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	if err := c.wait(ctx, "users.update"); err != nil {
		return nil, err
	}
	existing, ok := c.store.UserByID(id)
	if !ok {
		return nil, user.ErrUserNotFound
	}
	if err := patch.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	existing.ApplyPatch(patch)
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	c.store.SaveUser(existing)
	return &existing, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) (*user.DeleteSummary, error) {
	if err := c.wait(ctx, "users.delete"); err != nil {
		return nil, err
	}
	if !c.store.RemoveUser(id) {
		return nil, user.ErrUserNotFound
	}
	return &user.DeleteSummary{
		Success:   true,
		DeletedID: id,
		Message:   "User deleted successfully",
	}, nil
}

// Declared hooks the mock backend does not serve.

func (c *Client) BatchDeleteUsers(ctx context.Context, ids []string) (*user.BatchDeleteSummary, error) {
	return nil, apierr.NotImplemented("batch user delete")
}

func (c *Client) RestoreUsers(ctx context.Context, ids []string) (*user.RestoreSummary, error) {
	return nil, apierr.NotImplemented("user restore")
}

func (c *Client) ChangeUserRole(ctx context.Context, id string, role user.Role) (*user.User, error) {
	return nil, apierr.NotImplemented("user role change")
}

// ----------------------------------------
// DASHBOARD
// ----------------------------------------

func (c *Client) GetDashboardStats(ctx context.Context) (*dashboard.Stats, error) {
	if err := c.wait(ctx, "dashboard.stats"); err != nil {
		return nil, err
	}
	stats := c.store.Stats()
	return &stats, nil
}

// ----------------------------------------
// RECOMMENDATION SETTINGS
// ----------------------------------------

func (c *Client) GetRecommendationSettings(ctx context.Context) (*recommendation.Settings, error) {
	if err := c.wait(ctx, "settings.get"); err != nil {
		return nil, err
	}
	settings := c.store.Settings()
	return &settings, nil
}

func (c *Client) UpdateRecommendationSettings(ctx context.Context, settings recommendation.Settings) (*recommendation.Settings, error) {
	if err := c.wait(ctx, "settings.update"); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}
	// Full replace, never a partial patch.
	c.store.SetSettings(settings)
	return &settings, nil
}

// ----------------------------------------
// UPLOADED FILES
// ----------------------------------------

func (c *Client) UploadFile(ctx context.Context, req upload.UploadRequest) (*upload.UploadedFile, error) {
	if err := c.wait(ctx, "uploads.create"); err != nil {
		return nil, err
	}
	if !req.HasFile() {
		return nil, upload.ErrNoFileProvided
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	f := upload.UploadedFile{
		ID:         c.store.NextFileID(),
		Name:       req.FileName,
		URL:        fmt.Sprintf("https://example.com/uploads/%s/%s", uuid.NewString(), req.FileName),
		Type:       contentType,
		Size:       req.Size,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	c.store.InsertFile(f)
	return &f, nil
}

func (c *Client) ListUploadedFiles(ctx context.Context, req upload.ListFilesRequest) (*upload.ListFilesResult, error) {
	if err := c.wait(ctx, "uploads.list"); err != nil {
		return nil, err
	}
	req.SetDefaults()

	all := c.store.Files()
	return &upload.ListFilesResult{
		Files: paginate(all, req.Page, req.Limit),
		Total: len(all),
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func (c *Client) DeleteUploadedFile(ctx context.Context, id string) (*upload.DeleteSummary, error) {
	if err := c.wait(ctx, "uploads.delete"); err != nil {
		return nil, err
	}
	f, ok := c.store.RemoveFile(id)
	if !ok {
		return nil, upload.ErrFileNotFound
	}
	return &upload.DeleteSummary{
		Success:     true,
		Message:     "File deleted successfully",
		DeletedFile: f,
	}, nil
}
