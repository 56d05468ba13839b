package seed

import (
	"fmt"
	"log/slog"
	"time"

	"mindscape/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	NumDebates  int
	MaxDays     int
	ShouldClean bool
	// RandSeed fixes the random source; zero means time-based.
	RandSeed int64
}

var debateTitles = []string{
	"Should homework be abolished?",
	"Is remote school as effective as in-person?",
	"Should social media require age verification?",
	"Are exams the best way to measure learning?",
	"Should school days start later?",
	"Is AI tutoring better than human tutoring?",
	"Should phones be banned in classrooms?",
	"Does gamification improve learning outcomes?",
}

// Run populates the database with a connected demo dataset: users, posts
// with comments and reactions, a friendship mesh, weekly debates, and a
// moderator account (moderator@example.com / password123).
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 60
	}
	if opts.NumDebates <= 0 {
		opts.NumDebates = 4
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	f := NewFactory(db, opts)

	moderator, err := f.CreateUser(func(u *models.User) {
		u.Username = "moderator"
		u.Email = "moderator@example.com"
		u.IsModerator = true
	})
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(author)
		if err != nil {
			return err
		}
		posts = append(posts, post)

		if f.rng.Intn(4) == 0 {
			if _, err := f.CreateAttachment(post); err != nil {
				return err
			}
		}

		nComments := f.rng.Intn(5)
		for c := 0; c < nComments; c++ {
			commenter := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
		}

		nReactions := f.rng.Intn(len(users)/2 + 1)
		for r := 0; r < nReactions; r++ {
			reactor := users[f.rng.Intn(len(users))]
			kind := models.ReactionLike
			if f.rng.Intn(5) == 0 {
				kind = models.ReactionDislike
			}
			if err := f.CreateReaction(reactor, post, kind); err != nil {
				return err
			}
		}
	}

	if err := seedFriendMesh(f, users); err != nil {
		return err
	}

	if err := seedDebates(f, posts, opts.NumDebates); err != nil {
		return err
	}

	slog.Info("seed complete",
		"users", len(users)+1,
		"posts", len(posts),
		"debates", opts.NumDebates,
		"moderator", moderator.Email)
	return nil
}

// seedFriendMesh connects each user to a handful of others, mixing
// accepted friendships with pending requests.
func seedFriendMesh(f *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	seen := make(map[[2]uint]bool)

	for _, user := range users {
		nLinks := f.rng.Intn(4) + 1
		for i := 0; i < nLinks; i++ {
			other := users[f.rng.Intn(len(users))]
			if other.ID == user.ID {
				continue
			}

			key := pairKey(user.ID, other.ID)
			if seen[key] {
				continue
			}
			seen[key] = true

			status := models.FriendshipStatusAccepted
			if f.rng.Intn(3) == 0 {
				status = models.FriendshipStatusPending
			}
			if _, err := f.CreateFriendship(user, other, status); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedDebates creates one debate per recent week, the newest linked to a
// seeded post.
func seedDebates(f *Factory, posts []*models.Post, n int) error {
	weekStart := mondayOf(time.Now())
	for i := 0; i < n; i++ {
		title := debateTitles[f.rng.Intn(len(debateTitles))]
		if i > 0 {
			title = fmt.Sprintf("%s (%s)", title, gofakeit.Word())
		}

		var postID *uint
		if i == 0 && len(posts) > 0 {
			postID = &posts[f.rng.Intn(len(posts))].ID
		}

		if _, err := f.CreateDebate(title, weekStart.AddDate(0, 0, -7*i), postID); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes all seeded rows. Child tables go first so foreign keys
// hold under enforcement.
func Clean(db *gorm.DB) error {
	tables := []any{
		&models.Reaction{},
		&models.Comment{},
		&models.Attachment{},
		&models.Debate{},
		&models.Friendship{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clean table %T: %w", table, err)
		}
	}
	return nil
}

func pairKey(a, b uint) [2]uint {
	if a > b {
		a, b = b, a
	}
	return [2]uint{a, b}
}

func mondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
