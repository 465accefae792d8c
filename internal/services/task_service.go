package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
	"github.com/viltrumflow/taskflow-api/internal/utils"
	"github.com/viltrumflow/taskflow-api/internal/validation"
)

// TaskService handles task business logic
type TaskService struct {
	store *repository.Store
	now   func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(store *repository.Store) *TaskService {
	return &TaskService{
		store: store,
		now:   time.Now,
	}
}

// ListTasksInput represents filters for listing tasks. Nil filters are not applied.
type ListTasksInput struct {
	OwnerID   *uint64
	ProjectID *uint64
	Status    *models.TaskStatus
	Priority  *models.TaskPriority
	Page      utils.PaginationParams
}

// ListTasks returns tasks newest first
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, int64, error) {
	var (
		tasks []models.Task
		total int64
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		tasks, total, err = repos.Tasks.List(repository.TaskFilter{
			OwnerID:   input.OwnerID,
			ProjectID: input.ProjectID,
			Status:    input.Status,
			Priority:  input.Priority,
			Page:      input.Page,
		})
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// GetTask returns a task with owner, project and assignees, plus the number
// of its direct subtasks
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*models.Task, int64, error) {
	var (
		task     *models.Task
		subtasks int64
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		task, err = repos.Tasks.FindByID(id, "Owner", "Project", "Assignees")
		if err != nil {
			return notFound(err, "Task not found")
		}
		subtasks, err = repos.Tasks.CountSubtasks(id)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return task, subtasks, nil
}

// CreateTask creates a task owned by actor and assigns the requested users
func (s *TaskService) CreateTask(ctx context.Context, actor *models.User, req dto.TaskCreateRequest) (*models.Task, error) {
	task := &models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
		OwnerID:        actor.ID,
		ProjectID:      req.ProjectID,
		ParentTaskID:   req.ParentTaskID,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	if task.Status == models.TaskStatusCompleted {
		completedAt := s.now().UTC()
		task.CompletedAt = &completedAt
	}

	var created *models.Task
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		if task.ProjectID != nil {
			if err := checkProject(repos.Projects, *task.ProjectID); err != nil {
				return err
			}
		}
		if task.ParentTaskID != nil {
			if err := checkParent(repos.Tasks, 0, *task.ParentTaskID); err != nil {
				return err
			}
		}
		if err := checkAssignees(repos.Users, req.AssigneeIDs); err != nil {
			return err
		}

		if err := repos.Tasks.Create(task); err != nil {
			return err
		}
		if len(req.AssigneeIDs) > 0 {
			if err := repos.Tasks.ReplaceAssignees(task.ID, req.AssigneeIDs); err != nil {
				return err
			}
		}

		var err error
		created, err = repos.Tasks.FindByID(task.ID, "Assignees")
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTask applies the supplied fields. Moving to completed stamps
// completed_at; a supplied assignee list replaces the current one.
func (s *TaskService) UpdateTask(ctx context.Context, actor *models.User, id uint64, req dto.TaskUpdateRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if req.Status.Present() && req.Status.Value == models.TaskStatusCompleted {
		changes["completed_at"] = s.now().UTC()
	}
	assignees, replaceAssignees := req.Assignees()

	var updated *models.Task
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		task, err := repos.Tasks.FindByID(id)
		if err != nil {
			return notFound(err, "Task not found")
		}
		if !canModify(actor, task.OwnerID) {
			return apierrors.Forbidden("Not enough permissions")
		}

		if req.ProjectID.Present() {
			if err := checkProject(repos.Projects, req.ProjectID.Value); err != nil {
				return err
			}
		}
		if req.ParentTaskID.Present() {
			if err := checkParent(repos.Tasks, id, req.ParentTaskID.Value); err != nil {
				return err
			}
		}

		if err := repos.Tasks.Update(id, changes); err != nil {
			return err
		}

		if replaceAssignees {
			if err := checkAssignees(repos.Users, assignees); err != nil {
				return err
			}
			if err := repos.Tasks.ReplaceAssignees(id, assignees); err != nil {
				return err
			}
		}

		updated, err = repos.Tasks.FindByID(id, "Assignees")
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask deletes a task with its subtasks, comments and assignments
func (s *TaskService) DeleteTask(ctx context.Context, actor *models.User, id uint64) error {
	return s.store.Do(ctx, func(repos repository.Repositories) error {
		task, err := repos.Tasks.FindByID(id)
		if err != nil {
			return notFound(err, "Task not found")
		}
		if !canModify(actor, task.OwnerID) {
			return apierrors.Forbidden("Not enough permissions")
		}
		return repos.Tasks.Delete(id)
	})
}

func checkProject(projects repository.ProjectRepository, id uint64) error {
	_, err := projects.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return referenceError("project_id", "Project does not exist")
	}
	return err
}

// checkParent verifies the parent exists and that making it the parent of
// taskID would not close a cycle. taskID is 0 for a task not yet created.
func checkParent(tasks repository.TaskRepository, taskID, parentID uint64) error {
	if taskID != 0 && parentID == taskID {
		return referenceError("parent_task_id", "A task cannot be its own parent")
	}

	visited := map[uint64]struct{}{}
	current := parentID
	for {
		if _, ok := visited[current]; ok {
			return nil
		}
		visited[current] = struct{}{}

		parent, err := tasks.FindByID(current)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return referenceError("parent_task_id", "Parent task does not exist")
		}
		if err != nil {
			return err
		}
		if parent.ParentTaskID == nil {
			return nil
		}
		if taskID != 0 && *parent.ParentTaskID == taskID {
			return referenceError("parent_task_id", "Parent task would create a cycle")
		}
		current = *parent.ParentTaskID
	}
}

// checkAssignees rejects duplicate IDs as a Conflict and unknown users as a
// validation error
func checkAssignees(users repository.UserRepository, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return apierrors.Conflict("Duplicate assignee in assignee_ids")
		}
		seen[id] = struct{}{}
	}

	count, err := users.CountByIDs(ids)
	if err != nil {
		return err
	}
	if int(count) != len(ids) {
		return referenceError("assignee_ids", "One or more users do not exist")
	}
	return nil
}

func referenceError(field, message string) error {
	return apierrors.Validation("Validation error", []validation.FieldError{{Field: field, Message: message}})
}
