package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aditya/news-blog-platform/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	fullName string
	email    string
	password string
	role     domain.Role
	googleID *string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		fullName: "Test User",
		email:    fmt.Sprintf("test_%s@example.com", suffix),
		password: "Testpass1!",
		role:     domain.RoleUser,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithFullName sets the full name
func (b *UserBuilder) WithFullName(fullName string) *UserBuilder {
	b.fullName = fullName
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// WithGoogleID marks the user as a linked Google account
func (b *UserBuilder) WithGoogleID(googleID string) *UserBuilder {
	b.googleID = &googleID
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		FullName:     b.fullName,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Role:         b.role,
		GoogleID:     b.googleID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"userName"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via the API and returns the user,
// the access token and the raw sign-up response with its cookies.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string, []*http.Cookie) {
	t.Helper()

	reqBody := map[string]string{
		"userName": b.username,
		"fullName": b.fullName,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/sign-up"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to sign up user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:       userID,
		Username: authResp.User.Username,
		FullName: authResp.User.FullName,
		Email:    authResp.User.Email,
		Role:     domain.Role(authResp.User.Role),
	}

	return user, authResp.AccessToken, resp.Cookies()
}

// CreateAuthenticatedRequest builds a request carrying the access token as a
// bearer header. An empty token leaves the request anonymous.
func CreateAuthenticatedRequest(t *testing.T, method, url string, body []byte, token string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// PostBuilder creates test posts with a builder pattern
type PostBuilder struct {
	title      string
	authorName string
	imageLink  string
	categories []string
	featured   bool
	authorID   uuid.UUID
}

// NewPostBuilder creates a new PostBuilder with default values
func NewPostBuilder() *PostBuilder {
	return &PostBuilder{
		title:      fmt.Sprintf("Test Post %s", uuid.New().String()[:8]),
		authorName: "Test Author",
		imageLink:  "https://example.com/photo.jpg",
		categories: []string{"Travel"},
	}
}

// WithTitle sets the title
func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.title = title
	return b
}

// WithCategories sets the categories
func (b *PostBuilder) WithCategories(categories ...string) *PostBuilder {
	b.categories = categories
	return b
}

// Featured marks the post as featured
func (b *PostBuilder) Featured() *PostBuilder {
	b.featured = true
	return b
}

// WithAuthor sets the post author
func (b *PostBuilder) WithAuthor(user *domain.User) *PostBuilder {
	b.authorID = user.ID
	b.authorName = user.FullName
	return b
}

// Build creates the post in the database
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()

	if b.authorID == uuid.Nil {
		t.Fatal("post builder requires an author, call WithAuthor first")
	}

	post := &domain.Post{
		ID:             uuid.New(),
		Title:          b.title,
		AuthorName:     b.authorName,
		ImageLink:      b.imageLink,
		Categories:     datatypes.NewJSONSlice(b.categories),
		Description:    "A description long enough to read like a real article body.",
		IsFeaturedPost: b.featured,
		TimeOfPost:     time.Now(),
		AuthorID:       b.authorID,
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	return post
}

// NewsBuilder creates test news articles with a builder pattern
type NewsBuilder struct {
	title    string
	category string
	featured bool
}

// NewNewsBuilder creates a new NewsBuilder with default values
func NewNewsBuilder() *NewsBuilder {
	return &NewsBuilder{
		title:    fmt.Sprintf("Test News %s", uuid.New().String()[:8]),
		category: "technology",
	}
}

// WithTitle sets the title
func (b *NewsBuilder) WithTitle(title string) *NewsBuilder {
	b.title = title
	return b
}

// WithCategory sets the category
func (b *NewsBuilder) WithCategory(category string) *NewsBuilder {
	b.category = category
	return b
}

// Featured marks the article as featured
func (b *NewsBuilder) Featured() *NewsBuilder {
	b.featured = true
	return b
}

// Build creates the news article in the database
func (b *NewsBuilder) Build(t *testing.T, db *gorm.DB) *domain.News {
	t.Helper()

	news := &domain.News{
		ID:          uuid.New(),
		Title:       b.title,
		Content:     "Full article content.",
		Summary:     "Article summary.",
		ImageURL:    "https://example.com/news.jpg",
		SourceURL:   "https://example.com/source",
		SourceName:  "Test Source",
		Category:    b.category,
		PublishedAt: time.Now(),
		Author:      "Test Reporter",
		IsFeatured:  b.featured,
	}

	if err := db.Create(news).Error; err != nil {
		t.Fatalf("failed to create news: %v", err)
	}

	return news
}
