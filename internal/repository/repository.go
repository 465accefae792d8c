package repository

import (
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Taken reports whether email or username belongs to a user other than excludeID
	Taken(column, value string, excludeID uint64) (bool, error)

	// List returns a page of users ordered by id
	List(page utils.PaginationParams) ([]models.User, int64, error)

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []uint64) (int64, error)

	// Update writes the given columns
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes the user together with everything they own
	Delete(id uint64) error
}

// PreferencesRepository reads and writes the preference columns of a user
type PreferencesRepository interface {
	Get(userID uint64) (*models.User, error)
	Update(userID uint64, changes map[string]interface{}) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	OwnerID *uint64
	Page    utils.PaginationParams
}

// TaskCounts are the per-status task totals of one project
type TaskCounts struct {
	Total      int64
	Completed  int64
	InProgress int64
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	SlugExists(slug string) (bool, error)
	List(filter ProjectFilter) ([]models.Project, int64, error)
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes the project, its tasks and their dependents
	Delete(id uint64) error

	// Stats counts the project's tasks by status
	Stats(id uint64) (TaskCounts, error)
}

// TaskFilter holds filtering options for listing tasks. Nil fields are not applied.
type TaskFilter struct {
	OwnerID   *uint64
	ProjectID *uint64
	Status    *models.TaskStatus
	Priority  *models.TaskPriority
	Page      utils.PaginationParams
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a task without touching associations
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks newest first with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update writes the given columns
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes the task, its subtasks, comments and assignments
	Delete(id uint64) error

	// ReplaceAssignees deletes every assignment of the task and inserts one per user ID
	ReplaceAssignees(taskID uint64, userIDs []uint64) error

	// CountSubtasks counts the direct children of a task
	CountSubtasks(id uint64) (int64, error)

	// Exists reports whether a task with the given ID exists
	Exists(id uint64) (bool, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint64) (*models.Comment, error)

	// ListByTask returns a task's comments newest first
	ListByTask(taskID uint64, page utils.PaginationParams) ([]models.Comment, int64, error)

	Update(id uint64, changes map[string]interface{}) error
	Delete(id uint64) error
}

// Repositories is the set of repositories bound to one transaction
type Repositories struct {
	Users       UserRepository
	Preferences PreferencesRepository
	Projects    ProjectRepository
	Tasks       TaskRepository
	Comments    CommentRepository
}
