package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted, TaskStatusArchived:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID             uint64       `gorm:"primarykey" json:"id"`
	Title          string       `gorm:"type:varchar(200);not null" json:"title"`
	Description    *string      `gorm:"type:text" json:"description"`
	Status         TaskStatus   `gorm:"type:varchar(20);not null;default:'todo';index:idx_task_status" json:"status"`
	Priority       TaskPriority `gorm:"type:varchar(20);not null;default:'medium';index:idx_task_priority" json:"priority"`
	DueDate        *time.Time   `gorm:"index:idx_task_due_date" json:"due_date"`
	StartDate      *time.Time   `json:"start_date"`
	CompletedAt    *time.Time   `json:"completed_at"`
	EstimatedHours *int         `json:"estimated_hours"`
	ActualHours    *int         `json:"actual_hours"`
	Progress       int          `gorm:"not null;default:0" json:"progress"`
	Tags           *string      `gorm:"type:varchar(500)" json:"tags"`
	OwnerID        uint64       `gorm:"column:user_id;not null;index:idx_task_user" json:"user_id"`
	ProjectID      *uint64      `gorm:"index:idx_task_project" json:"project_id"`
	ParentTaskID   *uint64      `gorm:"index:idx_task_parent" json:"parent_task_id"`
	CreatedAt      time.Time    `gorm:"index:idx_task_created" json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Relations, loaded on demand for read views
	Owner       User             `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Project     *Project         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	ParentTask  *Task            `gorm:"foreignKey:ParentTaskID;constraint:OnDelete:CASCADE" json:"-"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
