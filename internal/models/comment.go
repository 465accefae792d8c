package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	TaskID    uint64    `gorm:"not null;index:idx_comment_task" json:"task_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_comment_author" json:"author_id"`
	CreatedAt time.Time `gorm:"index:idx_comment_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Task   Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// All returns every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Project{},
		&Task{},
		&TaskAssignment{},
		&Comment{},
	}
}
