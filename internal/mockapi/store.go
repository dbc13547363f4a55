package mockapi

import (
	"fmt"
	"sync"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/domains/dashboard"
	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/domains/user"
)

// Store is the fake system of record: seeded in-memory collections
// guarded by a mutex. One instance is shared by every client; tests
// construct their own so nothing leaks between them.
type Store struct {
	mu sync.RWMutex

	books        []book.Book
	deletedBooks map[string]book.Book // holding area so restore can reinsert
	categories   []category.Category
	users        []user.User
	stats        dashboard.Stats
	settings     recommendation.Settings
	files        []upload.UploadedFile

	adminUser auth.SessionUser
	adminHash []byte

	// Monotonic sequences. Never reset on delete, so a new record can
	// never collide with an existing or previously deleted id.
	bookSeq     int
	categorySeq int
	fileSeq     int
}

// NewStore initializes a store with the canned collections.
func NewStore() *Store {
	books := seedBooks()
	categories := seedCategories()
	users := seedUsers()
	files := seedFiles()

	return &Store{
		books:        books,
		deletedBooks: make(map[string]book.Book),
		categories:   categories,
		users:        users,
		stats:        seedStats(),
		settings:     seedSettings(),
		files:        files,
		adminUser:    seedAdminUser(),
		adminHash:    seedAdminHash(),
		bookSeq:      len(books),
		categorySeq:  len(categories),
		fileSeq:      len(files),
	}
}

// ----------------------------------------
// BOOKS
// ----------------------------------------

// Books returns a copy of the collection.
func (s *Store) Books() []book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Store) BookByID(id string) (book.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return book.Book{}, false
}

func (s *Store) InsertBook(b book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, b)
}

// SaveBook replaces the record with the same id in place.
func (s *Store) SaveBook(b book.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].ID == b.ID {
			s.books[i] = b
			return true
		}
	}
	return false
}

// RemoveBooks removes the matching ids in place and parks the records
// in the deleted holding area. Returns the ids actually removed.
func (s *Store) RemoveBooks(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	removed := make([]string, 0, len(ids))
	remaining := s.books[:0]
	for _, b := range s.books {
		if _, ok := idSet[b.ID]; ok {
			s.deletedBooks[b.ID] = b
			removed = append(removed, b.ID)
			continue
		}
		remaining = append(remaining, b)
	}
	s.books = remaining
	return removed
}

// RestoreBooks reinserts previously deleted books by id set. Returns
// the number reinserted.
func (s *Store) RestoreBooks(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for _, id := range ids {
		b, ok := s.deletedBooks[id]
		if !ok {
			continue
		}
		delete(s.deletedBooks, id)
		s.books = append(s.books, b)
		restored++
	}
	return restored
}

func (s *Store) NextBookID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookSeq++
	return fmt.Sprintf("book-%d", s.bookSeq)
}

// ----------------------------------------
// CATEGORIES
// ----------------------------------------

func (s *Store) Categories() []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]category.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) CategoryByID(id string) (category.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return category.Category{}, false
}

func (s *Store) InsertCategory(c category.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, c)
}

func (s *Store) SaveCategory(c category.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = c
			return true
		}
	}
	return false
}

func (s *Store) RemoveCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) NextCategoryID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categorySeq++
	return fmt.Sprintf("cat-%d", s.categorySeq)
}

// ----------------------------------------
// USERS
// ----------------------------------------

func (s *Store) Users() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) UserByID(id string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

func (s *Store) SaveUser(u user.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return true
		}
	}
	return false
}

func (s *Store) RemoveUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

// ----------------------------------------
// DASHBOARD / SETTINGS
// ----------------------------------------

func (s *Store) Stats() dashboard.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Store) Settings() recommendation.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SetSettings(settings recommendation.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// ----------------------------------------
// UPLOADED FILES
// ----------------------------------------

func (s *Store) Files() []upload.UploadedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]upload.UploadedFile, len(s.files))
	copy(out, s.files)
	return out
}

func (s *Store) InsertFile(f upload.UploadedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, f)
}

func (s *Store) RemoveFile(id string) (upload.UploadedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return f, true
		}
	}
	return upload.UploadedFile{}, false
}

func (s *Store) NextFileID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileSeq++
	return fmt.Sprintf("file-%d", s.fileSeq)
}

// ----------------------------------------
// SEEDED CREDENTIAL
// ----------------------------------------

// AdminUser returns the seeded admin session record.
func (s *Store) AdminUser() auth.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminUser
}

// AdminPasswordHash returns the bcrypt hash of the seeded credential.
func (s *Store) AdminPasswordHash() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminHash
}
