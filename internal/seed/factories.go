// Package seed creates demo and test data for the application database.
// It is intended for development environments only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"mindscape/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them. It is a thin helper
// shared by the seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seedVal := opts.RandSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gofakeit.Seed(seedVal)
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(seedVal)),
		opts: opts,
	}
}

// seededPassword is the shared plaintext for all demo accounts.
const seededPassword = "password123"

// CreateUser persists a user with a deterministic demo password.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seededPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:    fmt.Sprintf("%s%d", gofakeit.Username(), f.rng.Intn(10000)),
		Email:       gofakeit.Email(),
		Password:    string(hash),
		DisplayName: gofakeit.Name(),
	}
	for _, o := range overrides {
		o(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post authored by the given user with a creation
// time spread over the recent past so feeds look lived-in.
func (f *Factory) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		AuthorID:  author.ID,
		Content:   gofakeit.Paragraph(1, 3, 12, "\n"),
		CreatedAt: f.pastTime(),
	}
	for _, o := range overrides {
		o(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// CreateComment persists a comment under the given post.
func (f *Factory) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		AuthorID:  author.ID,
		Content:   gofakeit.Sentence(f.rng.Intn(12) + 3),
		CreatedAt: post.CreatedAt.Add(time.Duration(f.rng.Intn(600)+1) * time.Minute),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// CreateReaction records a reaction of the given kind. Duplicate
// reactions for the same identity are absorbed by the unique index.
func (f *Factory) CreateReaction(user *models.User, post *models.Post, kind models.ReactionKind) error {
	reaction := &models.Reaction{
		PostID: post.ID,
		UserID: user.ID,
		Kind:   kind,
	}
	err := f.db.Where("post_id = ? AND user_id = ? AND kind = ?", post.ID, user.ID, kind).
		FirstOrCreate(reaction).Error
	if err != nil {
		return fmt.Errorf("create reaction: %w", err)
	}
	return nil
}

// CreateFriendship persists a friendship row in the given state.
func (f *Factory) CreateFriendship(requester, addressee *models.User, status models.FriendshipStatus) (*models.Friendship, error) {
	friendship := &models.Friendship{
		RequesterID: requester.ID,
		AddresseeID: addressee.ID,
		Status:      status,
	}
	if err := f.db.Create(friendship).Error; err != nil {
		return nil, fmt.Errorf("create friendship: %w", err)
	}
	return friendship, nil
}

// CreateDebate persists a weekly debate, optionally linked to a post.
func (f *Factory) CreateDebate(title string, weekStart time.Time, postID *uint) (*models.Debate, error) {
	debate := &models.Debate{
		Title:       title,
		Description: gofakeit.Sentence(10),
		WeekStart:   weekStart,
		PostID:      postID,
		ActivityRef: fmt.Sprintf("demo:%s", gofakeit.UUID()),
		Active:      true,
	}
	if err := f.db.Create(debate).Error; err != nil {
		return nil, fmt.Errorf("create debate: %w", err)
	}
	return debate, nil
}

// CreateAttachment persists an attachment record for the given post.
func (f *Factory) CreateAttachment(post *models.Post) (*models.Attachment, error) {
	attachment := &models.Attachment{
		PostID:   post.ID,
		Path:     "/",
		Filename: fmt.Sprintf("%s-%d.jpg", gofakeit.Word(), f.rng.Intn(10000)),
		IsImage:  true,
	}
	if err := f.db.Create(attachment).Error; err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return attachment, nil
}

func (f *Factory) pastTime() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 60
	}
	back := time.Duration(f.rng.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}
