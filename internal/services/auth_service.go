package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	store  *repository.Store
	tokens TokenIssuer
	now    func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *repository.Store, tokens TokenIssuer) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		now:    time.Now,
	}
}

// Login verifies credentials, records the login time and returns a token pair.
// The identifier may be a username or an email address.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*dto.TokenResponse, error) {
	var userID uint64
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.FindByUsername(identifier)
		if errors.Is(err, gorm.ErrRecordNotFound) && strings.Contains(identifier, "@") {
			user, err = repos.Users.FindByEmail(identifier)
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierrors.InvalidCredentials()
			}
			return err
		}

		if !checkPassword(user.HashedPassword, password) {
			return apierrors.InvalidCredentials()
		}
		if !user.IsActive {
			return apierrors.Forbidden("Inactive user")
		}

		userID = user.ID
		return repos.Users.Update(user.ID, map[string]interface{}{"last_login": s.now().UTC()})
	})
	if err != nil {
		return nil, err
	}

	return s.issue(userID)
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokens.Verify(refreshToken, constants.TokenKindRefresh)
	if err != nil {
		return nil, apierrors.Unauthorized("Could not validate credentials")
	}

	if _, err := s.activeUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.issue(userID)
}

// Authenticate resolves an access token to its active user.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	userID, err := s.tokens.Verify(accessToken, constants.TokenKindAccess)
	if err != nil {
		return nil, apierrors.Unauthorized("Could not validate credentials")
	}
	return s.activeUser(ctx, userID)
}

func (s *AuthService) activeUser(ctx context.Context, userID uint64) (*models.User, error) {
	var user *models.User
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.Unauthorized("Could not validate credentials")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apierrors.Forbidden("Inactive user")
	}
	return user, nil
}

func (s *AuthService) issue(userID uint64) (*dto.TokenResponse, error) {
	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, apierrors.Internal("Failed to issue tokens", err)
	}
	return &pair, nil
}
