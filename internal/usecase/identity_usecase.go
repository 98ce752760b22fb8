package usecase

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"gorm.io/gorm"
)

const (
	fallbackUsername   = "unknown_user"
	maxResolveAttempts = 3
)

type IdentityUseCase interface {
	// Resolve maps a federated sign-in event onto exactly one persisted user.
	// An error here must abort the sign-in callback.
	Resolve(email, displayName, avatarURL, providerAccountID string) (*entity.User, error)
	GetUser(userID string) (*entity.User, error)
	ListUsers() ([]*entity.User, error)
	DeleteUser(userID string) error
}

type identityUseCase struct {
	userRepo persistent.UserRepository
	emails   EmailPublisher
	siteURL  string
	logger   *logger.Logger
}

func NewIdentityUseCase(
	userRepo persistent.UserRepository,
	emails EmailPublisher,
	siteURL string,
	logger *logger.Logger,
) IdentityUseCase {
	return &identityUseCase{
		userRepo: userRepo,
		emails:   emails,
		siteURL:  siteURL,
		logger:   logger,
	}
}

func (uc *identityUseCase) Resolve(email, displayName, avatarURL, providerAccountID string) (*entity.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, validationError("email is required")
	}

	existing, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return uc.resolveExisting(existing, displayName, providerAccountID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// First sign-in for this email. The username pre-check loop only avoids
	// the common collisions; the unique index is the actual guarantee, so a
	// duplicate-key error re-runs the derivation against fresh state.
	for attempt := 0; attempt < maxResolveAttempts; attempt++ {
		username, err := uc.deriveUsername(displayName)
		if err != nil {
			return nil, err
		}

		user := &entity.User{
			Username:       username,
			Email:          email,
			AvatarURL:      avatarURL,
			ProviderUserID: providerAccountID,
		}

		err = uc.userRepo.Create(user)
		if err == nil {
			uc.sendWelcomeEmail(email, displayName)
			return user, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			uc.logger.Warn("Duplicate key creating user for %s, retrying resolve (attempt %d)", email, attempt+1)
			// The email itself may have been claimed by a concurrent sign-in.
			if winner, lookupErr := uc.userRepo.GetByEmail(email); lookupErr == nil {
				return uc.resolveExisting(winner, displayName, providerAccountID)
			}
			continue
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return nil, fmt.Errorf("%w: could not allocate a unique username for %s", ErrConflict, email)
}

func (uc *identityUseCase) resolveExisting(user *entity.User, displayName, providerAccountID string) (*entity.User, error) {
	if user.ProviderUserID == "" && providerAccountID != "" {
		user.ProviderUserID = providerAccountID
		if err := uc.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to backfill provider id: %w", err)
		}
	}

	uc.sendWelcomeBackEmail(user.Email, displayName)
	return user, nil
}

// deriveUsername lower-cases the display name, collapses whitespace runs into
// underscores, and appends _1, _2, ... until no stored user has the candidate.
func (uc *identityUseCase) deriveUsername(displayName string) (string, error) {
	base := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(displayName))), "_")
	if base == "" {
		base = fallbackUsername
	}

	candidate := base
	for counter := 1; ; counter++ {
		_, err := uc.userRepo.GetByUsername(candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check username %q: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s_%d", base, counter)
	}
}

func (uc *identityUseCase) sendWelcomeEmail(email, displayName string) {
	uc.publishEmail(map[string]interface{}{
		"to":       email,
		"subject":  "Welcome to Inkwell – let's get you started!",
		"html":     welcomeEmailBody(displayName, uc.siteURL),
		"priority": 5,
	})
}

func (uc *identityUseCase) sendWelcomeBackEmail(email, displayName string) {
	uc.publishEmail(map[string]interface{}{
		"to":       email,
		"subject":  "Welcome back to Inkwell!",
		"html":     welcomeBackEmailBody(displayName, uc.siteURL),
		"priority": 3,
	})
}

// publishEmail is fire-and-forget: a failed publish is logged and never rolls
// back the sign-in.
func (uc *identityUseCase) publishEmail(task map[string]interface{}) {
	if uc.emails == nil {
		return
	}
	if err := uc.emails.PublishEmailTask(task); err != nil {
		uc.logger.Error("[EMAIL QUEUE] Failed to publish email task to %v: %v", task["to"], err)
	}
}

func (uc *identityUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (uc *identityUseCase) ListUsers() ([]*entity.User, error) {
	return uc.userRepo.List()
}

func (uc *identityUseCase) DeleteUser(userID string) error {
	if err := uc.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func welcomeEmailBody(displayName, siteURL string) string {
	if displayName == "" {
		displayName = "there"
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 30px;">
  <h2>Hi %s,</h2>
  <p>Welcome to <strong>Inkwell</strong> – your new home for discovering, creating, and sharing stories.</p>
  <p>Your account is ready. Start exploring, or publish your very first post!</p>
  <a href="%s" style="display: inline-block; margin-top: 20px; background-color: #0070f3; color: white; padding: 12px 20px; border-radius: 5px; text-decoration: none;">Inkwell</a>
</div>`, displayName, siteURL)
}

func welcomeBackEmailBody(displayName, siteURL string) string {
	if displayName == "" {
		displayName = "there"
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 30px;">
  <h2>Hello %s,</h2>
  <p>Great to see you again on <strong>Inkwell</strong>. Dive back into your favorite reads or write something new.</p>
  <a href="%s" style="display: inline-block; margin-top: 20px; background-color: #28a745; color: white; padding: 12px 20px; border-radius: 5px; text-decoration: none;">Inkwell</a>
</div>`, displayName, siteURL)
}
