package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/viltrumflow/taskflow-api/internal/database"
	"github.com/viltrumflow/taskflow-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(clause.Associations).Create(project).Error
}

func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	projects := []models.Project{}
	if err := query.Scopes(database.Newest("projects"), database.Paginate(filter.Page)).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *GormProjectRepository) Update(id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{ID: id}).Updates(changes).Error
}

// Delete deletes a project, its tasks (with their subtasks), comments and assignments
func (r *GormProjectRepository) Delete(id uint64) error {
	var roots []uint64
	if err := r.db.Model(&models.Task{}).Where("project_id = ?", id).Pluck("id", &roots).Error; err != nil {
		return err
	}
	if err := deleteTasks(r.db, roots); err != nil {
		return err
	}

	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormProjectRepository) Stats(id uint64) (TaskCounts, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", id).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return TaskCounts{}, err
	}

	var counts TaskCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case models.TaskStatusCompleted:
			counts.Completed = row.Count
		case models.TaskStatusInProgress:
			counts.InProgress = row.Count
		}
	}
	return counts, nil
}
