package dto

import (
	"time"

	"github.com/viltrumflow/taskflow-api/internal/models"
)

// TaskCreateRequest creates a task owned by the caller.
type TaskCreateRequest struct {
	Title          string              `json:"title" binding:"required,min=1,max=200"`
	Description    *string             `json:"description"`
	Status         models.TaskStatus   `json:"status" binding:"omitempty,task_status"`
	Priority       models.TaskPriority `json:"priority" binding:"omitempty,task_priority"`
	DueDate        *time.Time          `json:"due_date"`
	StartDate      *time.Time          `json:"start_date"`
	EstimatedHours *int                `json:"estimated_hours" binding:"omitempty,gte=0"`
	Progress       *int                `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Tags           *string             `json:"tags" binding:"omitempty,max=500"`
	ProjectID      *uint64             `json:"project_id"`
	ParentTaskID   *uint64             `json:"parent_task_id"`
	AssigneeIDs    []uint64            `json:"assignee_ids"`
}

// TaskUpdateRequest is a partial update; only sent fields change.
type TaskUpdateRequest struct {
	Title          Optional[string]              `json:"title"`
	Description    Optional[string]              `json:"description"`
	Status         Optional[models.TaskStatus]   `json:"status"`
	Priority       Optional[models.TaskPriority] `json:"priority"`
	DueDate        Optional[time.Time]           `json:"due_date"`
	StartDate      Optional[time.Time]           `json:"start_date"`
	EstimatedHours Optional[int]                 `json:"estimated_hours"`
	ActualHours    Optional[int]                 `json:"actual_hours"`
	Progress       Optional[int]                 `json:"progress"`
	Tags           Optional[string]              `json:"tags"`
	ProjectID      Optional[uint64]              `json:"project_id"`
	ParentTaskID   Optional[uint64]              `json:"parent_task_id"`
	AssigneeIDs    Optional[[]uint64]            `json:"assignee_ids"`
}

// Validate checks the sent fields. Title may not be null.
func (r TaskUpdateRequest) Validate() error {
	var c checker
	if c.notNull("title", r.Title.Set, r.Title.Null) && r.Title.Present() {
		c.check("title", r.Title.Value, "min=1,max=200")
	}
	if c.notNull("status", r.Status.Set, r.Status.Null) && r.Status.Present() {
		c.check("status", string(r.Status.Value), "task_status")
	}
	if c.notNull("priority", r.Priority.Set, r.Priority.Null) && r.Priority.Present() {
		c.check("priority", string(r.Priority.Value), "task_priority")
	}
	if r.EstimatedHours.Present() {
		c.check("estimated_hours", r.EstimatedHours.Value, "gte=0")
	}
	if r.ActualHours.Present() {
		c.check("actual_hours", r.ActualHours.Value, "gte=0")
	}
	if c.notNull("progress", r.Progress.Set, r.Progress.Null) && r.Progress.Present() {
		c.check("progress", r.Progress.Value, "gte=0,lte=100")
	}
	if r.Tags.Present() {
		c.check("tags", r.Tags.Value, "max=500")
	}
	return c.err()
}

// Changes maps the sent scalar fields to column values. Assignees and the
// completed_at side effect are handled by the task service.
func (r TaskUpdateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Title.Set {
		changes["title"] = r.Title.Value
	}
	if r.Description.Set {
		changes["description"] = nullable(r.Description)
	}
	if r.Status.Set {
		changes["status"] = r.Status.Value
	}
	if r.Priority.Set {
		changes["priority"] = r.Priority.Value
	}
	if r.DueDate.Set {
		changes["due_date"] = nullable(r.DueDate)
	}
	if r.StartDate.Set {
		changes["start_date"] = nullable(r.StartDate)
	}
	if r.EstimatedHours.Set {
		changes["estimated_hours"] = nullable(r.EstimatedHours)
	}
	if r.ActualHours.Set {
		changes["actual_hours"] = nullable(r.ActualHours)
	}
	if r.Progress.Set {
		changes["progress"] = r.Progress.Value
	}
	if r.Tags.Set {
		changes["tags"] = nullable(r.Tags)
	}
	if r.ProjectID.Set {
		changes["project_id"] = nullable(r.ProjectID)
	}
	if r.ParentTaskID.Set {
		changes["parent_task_id"] = nullable(r.ParentTaskID)
	}
	return changes
}

// Assignees returns the replacement assignee list and whether one was sent.
// A null list is treated as not sent.
func (r TaskUpdateRequest) Assignees() ([]uint64, bool) {
	if !r.AssigneeIDs.Present() {
		return nil, false
	}
	if r.AssigneeIDs.Value == nil {
		return []uint64{}, true
	}
	return r.AssigneeIDs.Value, true
}

// TaskListQuery holds the optional task filters; zero values mean "no filter".
type TaskListQuery struct {
	UserID    uint64              `form:"user_id"`
	ProjectID uint64              `form:"project_id"`
	Status    models.TaskStatus   `form:"status" binding:"omitempty,task_status"`
	Priority  models.TaskPriority `form:"priority" binding:"omitempty,task_priority"`
}

// TaskAssigneeResponse is an assigned user as shown on a task.
type TaskAssigneeResponse struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// TaskResponse is the list view of a task.
type TaskResponse struct {
	ID             uint64                 `json:"id"`
	Title          string                 `json:"title"`
	Description    *string                `json:"description"`
	Status         models.TaskStatus      `json:"status"`
	Priority       models.TaskPriority    `json:"priority"`
	DueDate        *time.Time             `json:"due_date"`
	StartDate      *time.Time             `json:"start_date"`
	CompletedAt    *time.Time             `json:"completed_at"`
	EstimatedHours *int                   `json:"estimated_hours"`
	ActualHours    *int                   `json:"actual_hours"`
	Progress       int                    `json:"progress"`
	Tags           *string                `json:"tags"`
	UserID         uint64                 `json:"user_id"`
	ProjectID      *uint64                `json:"project_id"`
	ParentTaskID   *uint64                `json:"parent_task_id"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Assignees      []TaskAssigneeResponse `json:"assignees"`
}

// TaskDetailResponse is the single-task read view.
type TaskDetailResponse struct {
	TaskResponse
	Owner         UserResponse     `json:"owner"`
	Project       *ProjectResponse `json:"project"`
	SubtasksCount int64            `json:"subtasks_count"`
}

// ToTaskResponse converts a Task. Assignees are included when preloaded.
func ToTaskResponse(task models.Task) TaskResponse {
	resp := TaskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		DueDate:        task.DueDate,
		StartDate:      task.StartDate,
		CompletedAt:    task.CompletedAt,
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
		Progress:       task.Progress,
		Tags:           task.Tags,
		UserID:         task.OwnerID,
		ProjectID:      task.ProjectID,
		ParentTaskID:   task.ParentTaskID,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
		Assignees:      make([]TaskAssigneeResponse, 0, len(task.Assignments)),
	}

	for _, a := range task.Assignments {
		resp.Assignees = append(resp.Assignees, TaskAssigneeResponse{
			ID:        a.UserID,
			Username:  a.User.Username,
			FullName:  a.User.FullName,
			AvatarURL: a.User.AvatarURL,
		})
	}

	return resp
}

// ToTaskResponses converts a list of tasks.
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}

// ToTaskDetailResponse converts a Task and its subtask count.
func ToTaskDetailResponse(task models.Task, subtasks int64) TaskDetailResponse {
	resp := TaskDetailResponse{
		TaskResponse:  ToTaskResponse(task),
		Owner:         ToUserResponse(task.Owner),
		SubtasksCount: subtasks,
	}
	if task.Project != nil {
		project := ToProjectResponse(*task.Project)
		resp.Project = &project
	}
	return resp
}
