package mockapi

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/domains/user"
	"bookadmin-backend/internal/shared/apierr"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	return NewClient(NewStore(), 0)
}

func TestListBooksSearch(t *testing.T) {
	c := newTestClient(t)

	result, err := c.ListBooks(context.Background(), book.ListBooksRequest{
		Search: "book title 1",
		Limit:  50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Books)

	for _, b := range result.Books {
		matched := strings.Contains(strings.ToLower(b.Title), "book title 1") ||
			strings.Contains(strings.ToLower(b.Author), "book title 1")
		assert.True(t, matched, "book %s should match the search", b.ID)
	}
	// "Book Title 1" plus "Book Title 10".."Book Title 19".
	assert.Equal(t, 11, result.Total)
}

func TestListBooksCategoryFilter(t *testing.T) {
	c := newTestClient(t)

	result, err := c.ListBooks(context.Background(), book.ListBooksRequest{
		Category: "cat-1",
		Limit:    50,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Books)

	for _, b := range result.Books {
		found := false
		for _, ref := range b.Categories {
			if ref.ID == "cat-1" {
				found = true
			}
		}
		assert.True(t, found, "book %s should belong to cat-1", b.ID)
	}
}

func TestListBooksSortDescending(t *testing.T) {
	c := newTestClient(t)

	asc, err := c.ListBooks(context.Background(), book.ListBooksRequest{
		SortBy: "author", SortOrder: "asc", Limit: 50,
	})
	require.NoError(t, err)
	desc, err := c.ListBooks(context.Background(), book.ListBooksRequest{
		SortBy: "author", SortOrder: "desc", Limit: 50,
	})
	require.NoError(t, err)

	require.Equal(t, len(asc.Books), len(desc.Books))
	for i := range asc.Books {
		assert.Equal(t, asc.Books[i].ID, desc.Books[len(desc.Books)-1-i].ID)
	}
}

func TestListBooksPagination(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		page     int
		limit    int
		expected int
	}{
		{"first page", 1, 10, 10},
		{"last page", 2, 10, 10},
		{"past the end", 3, 10, 0},
		{"short last page", 3, 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.ListBooks(ctx, book.ListBooksRequest{Page: tt.page, Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, result.Books, tt.expected)
			assert.Equal(t, 20, result.Total)
		})
	}
}

func TestListBooksInvalidSort(t *testing.T) {
	c := newTestClient(t)

	_, err := c.ListBooks(context.Background(), book.ListBooksRequest{SortBy: "price"})
	require.Error(t, err)
	assert.True(t, apierr.IsKind(err, apierr.KindValidation))
}

func TestGetBookNotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetBook(context.Background(), "book-999")
	require.Error(t, err)
	assert.True(t, apierr.IsKind(err, apierr.KindNotFound))
}

func TestCreateBookPersistsAndAssignsID(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateBook(ctx, book.CreateBookRequest{Title: "New Book", Author: "Someone"})
	require.NoError(t, err)
	assert.Equal(t, "book-21", created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	fetched, err := c.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Book", fetched.Title)

	result, err := c.ListBooks(ctx, book.ListBooksRequest{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 21, result.Total)
}

func TestCreateBookValidation(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateBook(context.Background(), book.CreateBookRequest{Author: "No Title"})
	require.Error(t, err)

	apiErr, ok := apierr.From(err)
	require.True(t, ok)
	assert.Equal(t, apierr.KindValidation, apiErr.Kind)
	assert.Contains(t, apiErr.FieldErrors, "title")
}

func TestUpdateBookReplacesFields(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	original, err := c.GetBook(ctx, "book-1")
	require.NoError(t, err)

	updated, err := c.UpdateBook(ctx, "book-1", book.UpdateBookRequest{
		Title:  "Renamed",
		Author: original.Author,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.NotEmpty(t, updated.UpdatedAt)

	fetched, err := c.GetBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Title)
}

func TestDeleteAndRestoreBooks(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	summary, err := c.BatchDeleteBooks(ctx, []string{"book-1", "book-2", "book-999"})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.DeletedCount)
	assert.ElementsMatch(t, []string{"book-1", "book-2"}, summary.DeletedIDs)

	_, err = c.GetBook(ctx, "book-1")
	assert.True(t, apierr.IsKind(err, apierr.KindNotFound))

	restored, err := c.RestoreBooks(ctx, []string{"book-1", "book-2", "book-3"})
	require.NoError(t, err)
	assert.Equal(t, 2, restored.RestoredCount)

	_, err = c.GetBook(ctx, "book-1")
	assert.NoError(t, err)
}

func TestBookIDsStayMonotonicAfterDelete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	first, err := c.CreateBook(ctx, book.CreateBookRequest{Title: "A", Author: "B"})
	require.NoError(t, err)
	assert.Equal(t, "book-21", first.ID)

	_, err = c.DeleteBook(ctx, first.ID)
	require.NoError(t, err)

	second, err := c.CreateBook(ctx, book.CreateBookRequest{Title: "C", Author: "D"})
	require.NoError(t, err)
	assert.Equal(t, "book-22", second.ID)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid credentials", "admin@example.com", "password", false},
		{"wrong password", "admin@example.com", "wrong", true},
		{"unknown email", "nobody@example.com", "password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := c.Login(ctx, auth.Credentials{Email: tt.email, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apierr.IsKind(err, apierr.KindUnauthorized))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", u.ID)
			assert.Equal(t, "Admin User", u.Name)
			assert.Equal(t, "admin", u.Role)
		})
	}
}

func TestListUsersFilters(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	byRole, err := c.ListUsers(ctx, user.ListUsersRequest{Role: "admin", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, byRole.Total)

	byStatus, err := c.ListUsers(ctx, user.ListUsersRequest{Status: "inactive", Limit: 50})
	require.NoError(t, err)
	for _, u := range byStatus.Users {
		assert.Equal(t, user.StatusInactive, u.Status)
	}
}

func TestUpdateUserPatchPersists(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	name := "Renamed User"
	status := user.StatusInactive
	updated, err := c.UpdateUser(ctx, "user-2", user.Patch{Name: &name, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", updated.Name)
	assert.Equal(t, user.StatusInactive, updated.Status)
	assert.Equal(t, "user2@example.com", updated.Email, "unpatched fields keep their value")

	fetched, err := c.GetUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", fetched.Name)
}

func TestUserBulkHooksNotImplemented(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.BatchDeleteUsers(ctx, []string{"user-2"})
	assert.True(t, apierr.IsKind(err, apierr.KindNotImplemented))

	_, err = c.RestoreUsers(ctx, []string{"user-2"})
	assert.True(t, apierr.IsKind(err, apierr.KindNotImplemented))

	_, err = c.ChangeUserRole(ctx, "user-2", user.RoleAdmin)
	assert.True(t, apierr.IsKind(err, apierr.KindNotImplemented))
}

func TestDashboardStats(t *testing.T) {
	c := newTestClient(t)

	stats, err := c.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 256, stats.TotalBooks)
	assert.Len(t, stats.TopCategories, 5)
	assert.Len(t, stats.UserActivity, 6)
}

func TestUpdateRecommendationSettings(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	settings, err := c.GetRecommendationSettings(ctx)
	require.NoError(t, err)

	settings.MaxRecommendations = 30
	updated, err := c.UpdateRecommendationSettings(ctx, *settings)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.MaxRecommendations)

	fetched, err := c.GetRecommendationSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, fetched.MaxRecommendations)
}

func TestUpdateRecommendationSettingsValidation(t *testing.T) {
	c := newTestClient(t)

	bad := recommendation.Settings{
		AlgorithmType:       recommendation.AlgorithmHybrid,
		SimilarityThreshold: 1.5,
		MaxRecommendations:  15,
		RefreshInterval:     24,
	}
	_, err := c.UpdateRecommendationSettings(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, apierr.IsKind(err, apierr.KindValidation))
}

func TestUploadWithoutFile(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.UploadFile(ctx, upload.UploadRequest{})
	require.Error(t, err)
	assert.True(t, apierr.IsKind(err, apierr.KindBadRequest))

	// A failed upload must not leave a record behind.
	result, err := c.ListUploadedFiles(ctx, upload.ListFilesRequest{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestUploadAndDeleteFile(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	uploaded, err := c.UploadFile(ctx, upload.UploadRequest{
		FileName:    "cover.png",
		ContentType: "image/png",
		Size:        1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "file-3", uploaded.ID)
	assert.Contains(t, uploaded.URL, "cover.png")

	summary, err := c.DeleteUploadedFile(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, uploaded.ID, summary.DeletedFile.ID)

	_, err = c.DeleteUploadedFile(ctx, uploaded.ID)
	assert.True(t, apierr.IsKind(err, apierr.KindNotFound))
}

func TestWaitHonorsCancelledContext(t *testing.T) {
	c := NewClient(NewStore(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetBook(ctx, "book-1")
	assert.ErrorIs(t, err, context.Canceled)
}
