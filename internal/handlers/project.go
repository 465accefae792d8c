package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectListQuery struct {
	OwnerID uint64 `form:"owner_id"`
	Mine    bool   `form:"mine"`
}

// ListProjects returns projects, optionally filtered by owner_id or by
// mine=true for the current user's projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	page, ok := pagination(c)
	if !ok {
		return
	}
	var query projectListQuery
	if !bindQuery(c, &query) {
		return
	}

	var ownerID *uint64
	switch {
	case query.Mine:
		ownerID = &current.ID
	case query.OwnerID != 0:
		ownerID = &query.OwnerID
	}

	projects, total, err := h.projectService.List(c.Request.Context(), ownerID, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respondList(c, total, dto.ToProjectResponses(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.ProjectCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), current, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// GetProjectStats returns the project with task counts and completion percentage
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, stats, err := h.projectService.GetWithStats(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectWithStatsResponse(*project, stats))
}

func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProjectUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), current, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), current, id); err != nil {
		_ = c.Error(err)
		return
	}

	noContent(c)
}
