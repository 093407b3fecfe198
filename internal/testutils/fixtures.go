package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taoyize/vue-flask-blog/internal/model/article"
	"github.com/taoyize/vue-flask-blog/internal/model/user"
)

// DefaultPassword is the plaintext password of fixture users
const DefaultPassword = "password123"

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	username := fmt.Sprintf("test_user_%s", uniqueID)
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	// MinCost keeps fixture creation fast
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash fixture password: %v", err))
	}

	testUser := &user.User{
		Username:     username,
		Email:        &email,
		PasswordHash: string(hashed),
		Authority:    0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = &email
	}
}

// WithoutEmail clears the email
func WithoutEmail() UserOption {
	return func(u *user.User) {
		u.Email = nil
	}
}

// WithAuthority sets the authority flag
func WithAuthority(authority int) UserOption {
	return func(u *user.User) {
		u.Authority = authority
	}
}

// CreateTestArticle creates a published test article
func CreateTestArticle(db *gorm.DB, authorID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()

	testArticle := &article.Article{
		Title:     fmt.Sprintf("Test Article %s", uniqueID),
		Content:   "Test content",
		Excerpt:   "Test content",
		AuthorID:  authorID,
		Status:    article.StatusPublished,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithContent sets content and recomputes nothing; tests set excerpt explicitly when needed
func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

// WithStatus sets the article status
func WithStatus(status string) ArticleOption {
	return func(a *article.Article) {
		a.Status = status
	}
}

// WithViews sets the view counter
func WithViews(views uint) ArticleOption {
	return func(a *article.Article) {
		a.Views = views
	}
}

// WithCreatedAt sets the creation time (for ordering tests)
func WithCreatedAt(ts time.Time) ArticleOption {
	return func(a *article.Article) {
		a.CreatedAt = ts
	}
}
