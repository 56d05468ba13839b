// Package bootstrap prepares runtime state that must exist before the
// server starts serving, such as the development moderator account.
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"mindscape/internal/config"
	"mindscape/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDevModerator guarantees a moderator account exists in development
// so debate curation can be exercised without manual DB edits. It is a
// no-op outside development or when DEV_MODERATOR_PASSWORD is unset.
func EnsureDevModerator(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || cfg.DevModeratorPassword == "" {
		return nil
	}

	email := strings.TrimSpace(strings.ToLower(cfg.DevModeratorEmail))
	if email == "" {
		email = "moderator@mindscape.local"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DevModeratorPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash moderator password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		findErr := tx.Where("email = ?", email).First(&existing).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			user := models.User{
				Username:    "moderator",
				Email:       email,
				Password:    string(hash),
				DisplayName: "Moderator",
				IsModerator: true,
			}
			return tx.Create(&user).Error
		case findErr != nil:
			return findErr
		default:
			return tx.Model(&existing).Update("is_moderator", true).Error
		}
	})
}
