package services

import (
	"context"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
	"github.com/viltrumflow/taskflow-api/internal/utils"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

// UserService handles user accounts
type UserService struct {
	store *repository.Store
}

// NewUserService creates a new UserService
func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new user with server-side defaults. Email and username
// must both be unused.
func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (*models.User, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Bio:            req.Bio,
		HashedPassword: hashed,
		Role:           models.RoleUser,
		IsActive:       true,
		Theme:          models.ThemeAuto,
		Language:       "es",
		Notifications:  true,
	}

	err = s.store.Do(ctx, func(repos repository.Repositories) error {
		if err := ensureAvailable(repos.Users, user.Email, user.Username, 0); err != nil {
			return err
		}
		return repos.Users.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, id uint64) (*models.User, error) {
	var user *models.User
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByID(id)
		return notFound(err, "User not found")
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns a page of users. Only superusers may list.
func (s *UserService) List(ctx context.Context, actor *models.User, page utils.PaginationParams) ([]models.User, int64, error) {
	if !actor.IsSuperuser {
		return nil, 0, apierrors.Forbidden("Not enough permissions")
	}

	var (
		users []models.User
		total int64
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		users, total, err = repos.Users.List(page)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies the supplied profile fields. Users may update themselves;
// superusers may update anyone.
func (s *UserService) Update(ctx context.Context, actor *models.User, id uint64, req dto.UserUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !canModify(actor, id) {
		return nil, apierrors.Forbidden("Not enough permissions")
	}

	var user *models.User
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(id); err != nil {
			return notFound(err, "User not found")
		}

		var email, username string
		if req.Email.Present() {
			email = req.Email.Value
		}
		if req.Username.Present() {
			username = req.Username.Value
		}
		if err := ensureAvailable(repos.Users, email, username, id); err != nil {
			return err
		}

		if err := repos.Users.Update(id, req.Changes()); err != nil {
			return err
		}

		var err error
		user, err = repos.Users.FindByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password of user id. Changing one's own
// password requires the current one; superusers may reset others without it.
func (s *UserService) ChangePassword(ctx context.Context, actor *models.User, id uint64, req dto.PasswordChangeRequest) error {
	if !canModify(actor, id) {
		return apierrors.Forbidden("Not enough permissions")
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.store.Do(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users.FindByID(id)
		if err != nil {
			return notFound(err, "User not found")
		}
		if actor.ID == id && !checkPassword(user.HashedPassword, req.CurrentPassword) {
			return apierrors.Validation("Validation error", []validation.FieldError{
				{Field: "current_password", Message: "Incorrect password"},
			})
		}
		return repos.Users.Update(id, map[string]interface{}{"hashed_password": hashed})
	})
}

// Delete removes a user and everything they own.
func (s *UserService) Delete(ctx context.Context, actor *models.User, id uint64) error {
	if !canModify(actor, id) {
		return apierrors.Forbidden("Not enough permissions")
	}
	return s.store.Do(ctx, func(repos repository.Repositories) error {
		return notFound(repos.Users.Delete(id), "User not found")
	})
}

// ensureAvailable returns Conflict when a non-empty email or username is
// already used by a user other than excludeID.
func ensureAvailable(users repository.UserRepository, email, username string, excludeID uint64) error {
	if email != "" {
		taken, err := users.Taken("email", email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apierrors.Conflict("Email already registered")
		}
	}
	if username != "" {
		taken, err := users.Taken("username", username, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apierrors.Conflict("Username already taken")
		}
	}
	return nil
}
