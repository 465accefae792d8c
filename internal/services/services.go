package services

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
)

// Services bundles every service the HTTP layer needs
type Services struct {
	Auth        *AuthService
	Users       *UserService
	Projects    *ProjectService
	Tasks       *TaskService
	Comments    *CommentService
	Preferences *PreferencesService
}

// New wires every service to the same store
func New(store *repository.Store, tokens TokenIssuer) *Services {
	return &Services{
		Auth:        NewAuthService(store, tokens),
		Users:       NewUserService(store),
		Projects:    NewProjectService(store),
		Tasks:       NewTaskService(store),
		Comments:    NewCommentService(store),
		Preferences: NewPreferencesService(store),
	}
}

// notFound turns gorm's missing-row error into a typed NotFound and passes
// every other error through.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierrors.NotFound(message)
	}
	return err
}

// canModify reports whether actor may change a resource owned by ownerID
func canModify(actor *models.User, ownerID uint64) bool {
	return actor.IsSuperuser || actor.ID == ownerID
}

// prehash folds a password into a fixed 44-byte digest so passwords longer
// than bcrypt's 72-byte input limit are hashed over their full length.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apierrors.Internal("Failed to hash password", err)
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}
