package models

import "time"

type TaskAssignment struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	TaskID     uint64    `gorm:"not null;uniqueIndex:uq_task_user_assignment;index:idx_assignment_task" json:"task_id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:uq_task_user_assignment;index:idx_assignment_user" json:"user_id"`
	AssignedAt time.Time `gorm:"not null;autoCreateTime" json:"assigned_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
