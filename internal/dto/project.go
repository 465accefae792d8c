package dto

import (
	"time"

	"github.com/viltrumflow/taskflow-api/internal/models"
)

// ProjectCreateRequest creates a project. The slug is derived from Name.
type ProjectCreateRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description *string    `json:"description"`
	Color       string     `json:"color" binding:"omitempty,hexcolor6"`
	Icon        *string    `json:"icon" binding:"omitempty,max=50"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// ProjectUpdateRequest is a partial update; only sent fields change.
type ProjectUpdateRequest struct {
	Name        Optional[string]    `json:"name"`
	Description Optional[string]    `json:"description"`
	Color       Optional[string]    `json:"color"`
	Icon        Optional[string]    `json:"icon"`
	StartDate   Optional[time.Time] `json:"start_date"`
	EndDate     Optional[time.Time] `json:"end_date"`
	IsActive    Optional[bool]      `json:"is_active"`
	IsArchived  Optional[bool]      `json:"is_archived"`
}

// Validate checks the sent fields. Name may not be null.
func (r ProjectUpdateRequest) Validate() error {
	var c checker
	if c.notNull("name", r.Name.Set, r.Name.Null) && r.Name.Present() {
		c.check("name", r.Name.Value, "min=1,max=100")
	}
	if c.notNull("color", r.Color.Set, r.Color.Null) && r.Color.Present() {
		c.check("color", r.Color.Value, "hexcolor6")
	}
	if r.Icon.Present() {
		c.check("icon", r.Icon.Value, "max=50")
	}
	c.notNull("is_active", r.IsActive.Set, r.IsActive.Null)
	c.notNull("is_archived", r.IsArchived.Set, r.IsArchived.Null)
	return c.err()
}

// Changes maps the sent fields to column values.
func (r ProjectUpdateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name.Set {
		changes["name"] = r.Name.Value
	}
	if r.Description.Set {
		changes["description"] = nullable(r.Description)
	}
	if r.Color.Set {
		changes["color"] = r.Color.Value
	}
	if r.Icon.Set {
		changes["icon"] = nullable(r.Icon)
	}
	if r.StartDate.Set {
		changes["start_date"] = nullable(r.StartDate)
	}
	if r.EndDate.Set {
		changes["end_date"] = nullable(r.EndDate)
	}
	if r.IsActive.Set {
		changes["is_active"] = r.IsActive.Value
	}
	if r.IsArchived.Set {
		changes["is_archived"] = r.IsArchived.Value
	}
	return changes
}

// ProjectResponse is the read view of a project.
type ProjectResponse struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Slug        string     `json:"slug"`
	Color       string     `json:"color"`
	Icon        *string    `json:"icon"`
	IsActive    bool       `json:"is_active"`
	IsArchived  bool       `json:"is_archived"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	OwnerID     uint64     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProjectStats are task counts computed at read time.
type ProjectStats struct {
	TotalTasks      int64 `json:"total_tasks"`
	CompletedTasks  int64 `json:"completed_tasks"`
	InProgressTasks int64 `json:"in_progress_tasks"`
}

// CompletionPercentage is completed/total*100, or 0 for an empty project.
func (s ProjectStats) CompletionPercentage() float64 {
	if s.TotalTasks == 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
}

// ProjectWithStatsResponse is a project with its task counts.
type ProjectWithStatsResponse struct {
	ProjectResponse
	ProjectStats
	CompletionPercentage float64 `json:"completion_percentage"`
}

// ToProjectResponse converts a Project.
func ToProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Slug:        p.Slug,
		Color:       p.Color,
		Icon:        p.Icon,
		IsActive:    p.IsActive,
		IsArchived:  p.IsArchived,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProjectResponses converts a list of projects.
func ToProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = ToProjectResponse(p)
	}
	return out
}

// ToProjectWithStatsResponse attaches stats to a project view.
func ToProjectWithStatsResponse(p models.Project, stats ProjectStats) ProjectWithStatsResponse {
	return ProjectWithStatsResponse{
		ProjectResponse:      ToProjectResponse(p),
		ProjectStats:         stats,
		CompletionPercentage: stats.CompletionPercentage(),
	}
}
