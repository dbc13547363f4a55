package mockapi

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/domains/dashboard"
	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/domains/upload"
	"bookadmin-backend/internal/domains/user"
)

// The generated collections use a fixed random seed so every process
// (and every test) sees the same data.
const seedRandSource = 42

func seedBooks() []book.Book {
	rng := rand.New(rand.NewSource(seedRandSource))

	books := make([]book.Book, 0, 20)
	for i := 0; i < 20; i++ {
		n := i + 1
		books = append(books, book.Book{
			ID:     fmt.Sprintf("book-%d", n),
			Title:  fmt.Sprintf("Book Title %d", n),
			Author: fmt.Sprintf("Author %d", n),
			ISBN:   fmt.Sprintf("978-3-16-148410-%d", i),
			Description: fmt.Sprintf(
				"This is a detailed description for Book %d. It contains information about the plot, characters, and themes of the book.", n),
			Publisher:     fmt.Sprintf("Publisher %d", i%5+1),
			PublishedDate: fmt.Sprintf("202%d-%02d-%02d", i%5, i%9+1, i%20+1),
			Categories: []book.CategoryRef{
				{ID: fmt.Sprintf("cat-%d", i%5+1), Name: fmt.Sprintf("Category %d", i%5+1)},
				{ID: fmt.Sprintf("cat-%d", (i+2)%5+1), Name: fmt.Sprintf("Category %d", (i+2)%5+1)},
			},
			CoverImage: fmt.Sprintf("https://picsum.photos/seed/book%d/200/300", i),
			Rating:     math.Round(rng.Float64()*5*10) / 10,
		})
	}
	return books
}

func seedCategories() []category.Category {
	rng := rand.New(rand.NewSource(seedRandSource))

	categories := make([]category.Category, 0, 10)
	for i := 0; i < 10; i++ {
		n := i + 1
		categories = append(categories, category.Category{
			ID:          fmt.Sprintf("cat-%d", n),
			Name:        fmt.Sprintf("Category %d", n),
			Description: fmt.Sprintf("Description for category %d", n),
			BooksCount:  rng.Intn(30),
		})
	}
	return categories
}

func seedUsers() []user.User {
	users := make([]user.User, 0, 15)
	for i := 0; i < 15; i++ {
		n := i + 1
		role := user.RoleUser
		if i < 2 {
			role = user.RoleAdmin
		}
		status := user.StatusActive
		if i%5 == 0 {
			status = user.StatusInactive
		}
		date := fmt.Sprintf("2023-%d-%d", i%12+1, i%28+1)
		var lastLogin *string
		if i%3 != 0 {
			d := date
			lastLogin = &d
		}
		users = append(users, user.User{
			ID:        fmt.Sprintf("user-%d", n),
			Name:      fmt.Sprintf("User %d", n),
			Email:     fmt.Sprintf("user%d@example.com", n),
			Role:      role,
			Status:    status,
			CreatedAt: date,
			LastLogin: lastLogin,
		})
	}
	return users
}

func seedStats() dashboard.Stats {
	return dashboard.Stats{
		TotalBooks:      256,
		TotalUsers:      184,
		TotalCategories: 12,
		TotalReviews:    873,
		TopCategories: []dashboard.CategoryCount{
			{Name: "Fiction", Count: 78},
			{Name: "Science Fiction", Count: 52},
			{Name: "Mystery", Count: 43},
			{Name: "History", Count: 38},
			{Name: "Biography", Count: 25},
		},
		UserActivity: []dashboard.MonthActivity{
			{Month: "Jan", NewUsers: 24, Recommendations: 156},
			{Month: "Feb", NewUsers: 18, Recommendations: 132},
			{Month: "Mar", NewUsers: 29, Recommendations: 187},
			{Month: "Apr", NewUsers: 32, Recommendations: 205},
			{Month: "May", NewUsers: 25, Recommendations: 178},
			{Month: "Jun", NewUsers: 30, Recommendations: 192},
		},
	}
}

func seedSettings() recommendation.Settings {
	return recommendation.Settings{
		AlgorithmType:       recommendation.AlgorithmHybrid,
		SimilarityThreshold: 0.6,
		MaxRecommendations:  15,
		IncludeRatings:      true,
		IncludeGenres:       true,
		IncludePopularity:   true,
		RecencyWeight:       0.4,
		PopularityWeight:    0.3,
		RatingWeight:        0.3,
		RefreshInterval:     24,
	}
}

func seedFiles() []upload.UploadedFile {
	return []upload.UploadedFile{
		{
			ID:         "file-1",
			Name:       "cover-image-1.jpg",
			URL:        "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000",
			Type:       "image/jpeg",
			Size:       234567,
			UploadedAt: "2023-11-10T08:30:00Z",
		},
		{
			ID:         "file-2",
			Name:       "cover-image-2.jpg",
			URL:        "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?q=80&w=1000",
			Type:       "image/jpeg",
			Size:       345678,
			UploadedAt: "2023-11-11T09:15:00Z",
		},
	}
}

func seedAdminUser() auth.SessionUser {
	return auth.SessionUser{
		ID:    "user-1",
		Name:  "Admin User",
		Email: "admin@example.com",
		Role:  "admin",
	}
}

func seedAdminHash() []byte {
	// MinCost keeps store construction cheap; this is a demo credential,
	// not a real secret.
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("seed admin credential: %v", err))
	}
	return hash
}
