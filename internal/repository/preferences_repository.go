package repository

import (
	"gorm.io/gorm"

	"github.com/viltrumflow/taskflow-api/internal/models"
)

var preferenceColumns = []string{"id", "theme", "language", "notifications_enabled"}

// GormPreferencesRepository is a GORM implementation of PreferencesRepository
type GormPreferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new PreferencesRepository
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &GormPreferencesRepository{db: db}
}

// Get loads only the preference columns of the user
func (r *GormPreferencesRepository) Get(userID uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Select(preferenceColumns).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormPreferencesRepository) Update(userID uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	result := r.db.Model(&models.User{ID: userID}).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
