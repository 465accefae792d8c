package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/viltrumflow/taskflow-api/internal/database"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Omit(clause.Associations).Create(user).Error
}

func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Taken(column, value string, excludeID uint64) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserRepository) List(page utils.PaginationParams) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := []models.User{}
	if err := r.db.Order("id ASC").Scopes(database.Paginate(page)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *GormUserRepository) CountByIDs(ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *GormUserRepository) Update(id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.User{ID: id}).Updates(changes).Error
}

// Delete removes the user, their projects and tasks (with every subtask of
// those), their comments and assignments. The caller provides the transaction.
func (r *GormUserRepository) Delete(id uint64) error {
	var roots []uint64
	projects := r.db.Model(&models.Project{}).Select("id").Where("owner_id = ?", id)
	if err := r.db.Model(&models.Task{}).
		Where("user_id = ? OR project_id IN (?)", id, projects).
		Pluck("id", &roots).Error; err != nil {
		return err
	}

	if err := deleteTasks(r.db, roots); err != nil {
		return err
	}
	if err := r.db.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("user_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("owner_id = ?", id).Delete(&models.Project{}).Error; err != nil {
		return err
	}

	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
