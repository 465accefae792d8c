package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/viltrumflow/taskflow-api/internal/database"
	"github.com/viltrumflow/taskflow-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = preloadTaskRelation(query, p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if filter.OwnerID != nil {
		query = query.Where("tasks.user_id = ?", *filter.OwnerID)
	}
	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("tasks.priority = ?", *filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := []models.Task{}
	err := preloadTaskRelation(query, "Assignees").
		Scopes(database.Newest("tasks"), database.Paginate(filter.Page)).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates the given columns of a task
func (r *GormTaskRepository) Update(id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Task{ID: id}).Updates(changes).Error
}

// Delete deletes a task and everything hanging off it
func (r *GormTaskRepository) Delete(id uint64) error {
	exists, err := r.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return gorm.ErrRecordNotFound
	}
	return deleteTasks(r.db, []uint64{id})
}

// ReplaceAssignees swaps the full assignee set of a task
func (r *GormTaskRepository) ReplaceAssignees(taskID uint64, userIDs []uint64) error {
	if err := r.db.Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	assignments := make([]models.TaskAssignment, len(userIDs))
	for i, userID := range userIDs {
		assignments[i] = models.TaskAssignment{
			TaskID: taskID,
			UserID: userID,
		}
	}

	return r.db.Omit(clause.Associations).Create(&assignments).Error
}

func (r *GormTaskRepository) CountSubtasks(id uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("parent_task_id = ?", id).Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// preloadTaskRelation maps a read-view relation name onto gorm preloads.
// "Assignees" loads assignments in assignment order with their users.
func preloadTaskRelation(query *gorm.DB, name string) *gorm.DB {
	switch name {
	case "Assignees":
		return query.
			Preload("Assignments", func(db *gorm.DB) *gorm.DB {
				return db.Order("task_assignments.id ASC")
			}).
			Preload("Assignments.User")
	default:
		return query.Preload(name)
	}
}

// deleteTasks removes the given tasks and all of their descendants, along
// with the comments and assignments of every removed task.
func deleteTasks(tx *gorm.DB, roots []uint64) error {
	if len(roots) == 0 {
		return nil
	}

	ids, err := collectSubtree(tx, roots)
	if err != nil {
		return err
	}

	if err := tx.Where("task_id IN ?", ids).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id IN ?", ids).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}
	// detach first so row-by-row FK checks never see a dangling parent
	if err := tx.Model(&models.Task{}).Where("id IN ?", ids).Update("parent_task_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Task{}).Error
}

func collectSubtree(tx *gorm.DB, roots []uint64) ([]uint64, error) {
	seen := make(map[uint64]struct{}, len(roots))
	all := make([]uint64, 0, len(roots))
	frontier := roots
	for _, id := range roots {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			all = append(all, id)
		}
	}

	for len(frontier) > 0 {
		var children []uint64
		if err := tx.Model(&models.Task{}).Where("parent_task_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}

		frontier = frontier[:0:0]
		for _, id := range children {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}

	return all, nil
}
