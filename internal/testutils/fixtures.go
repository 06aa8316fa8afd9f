package testutils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/medium/internal/model/article"
	"terminal-terrace/medium/internal/model/profile"
	"terminal-terrace/medium/internal/model/user"
)

// DefaultPassword 测试用户的明文密码
const DefaultPassword = "password123"

func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	suffix := uniqueSuffix()
	testUser := &user.User{
		Username: fmt.Sprintf("user_%s", suffix),
		Email:    fmt.Sprintf("user_%s@example.com", suffix),
		Password: DefaultPassword,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testUser.Password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}
	testUser.Password = string(hash)

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
		u.Email = email
	}
}

// WithPassword sets the plain password, hashed before insert
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		u.Password = password
	}
}

// WithBio sets the bio
func WithBio(bio string) UserOption {
	return func(u *user.User) {
		u.Bio = bio
	}
}

// CreateTestArticle creates an article owned by author
func CreateTestArticle(db *gorm.DB, author *user.User, opts ...ArticleOption) *article.Article {
	suffix := uniqueSuffix()
	testArticle := &article.Article{
		Slug:        fmt.Sprintf("test-article-%s", suffix),
		Title:       fmt.Sprintf("Test Article %s", suffix),
		Description: "test description",
		Body:        "test body",
		TagList:     article.TagList{},
		AuthorID:    author.ID,
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Omit("Author").Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}
	testArticle.Author = *author

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithSlug sets the slug
func WithSlug(slug string) ArticleOption {
	return func(a *article.Article) {
		a.Slug = slug
	}
}

// WithTitle sets the title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithTags sets the tag list
func WithTags(tags ...string) ArticleOption {
	return func(a *article.Article) {
		a.TagList = article.TagList(tags)
	}
}

// CreateTestFollow makes follower follow following
func CreateTestFollow(db *gorm.DB, follower, following *user.User) {
	f := &profile.Follow{FollowerID: follower.ID, FollowingID: following.ID}
	if err := db.Create(f).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test follow: %v", err))
	}
}

// CreateTestFavorite records a favorite edge and bumps the counter
func CreateTestFavorite(db *gorm.DB, u *user.User, a *article.Article) {
	if err := db.Create(&article.Favorite{UserID: u.ID, ArticleID: a.ID}).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test favorite: %v", err))
	}
	if err := db.Model(&article.Article{}).Where("id = ?", a.ID).
		UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error; err != nil {
		panic(fmt.Sprintf("Failed to bump favorites_count: %v", err))
	}
	a.FavoritesCount++
}
