package models

import "time"

const DefaultProjectColor = "#3B82F6"

type Project struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Slug        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Color       string     `gorm:"type:varchar(7);not null;default:'#3B82F6'" json:"color"`
	Icon        *string    `gorm:"type:varchar(50)" json:"icon"`
	IsActive    bool       `gorm:"not null;default:true;index:idx_project_active" json:"is_active"`
	IsArchived  bool       `gorm:"not null;default:false" json:"is_archived"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	OwnerID     uint64     `gorm:"not null;index:idx_project_owner" json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
