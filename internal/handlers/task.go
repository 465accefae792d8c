package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListMyTasks returns the current user's tasks
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	h.list(c, &current.ID)
}

// ListAllTasks returns every task, filtered by owner when user_id is given
func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	h.list(c, nil)
}

func (h *TaskHandler) list(c *gin.Context, ownerID *uint64) {
	page, ok := pagination(c)
	if !ok {
		return
	}
	var query dto.TaskListQuery
	if !bindQuery(c, &query) {
		return
	}

	input := services.ListTasksInput{OwnerID: ownerID, Page: page}
	if input.OwnerID == nil && query.UserID != 0 {
		input.OwnerID = &query.UserID
	}
	if query.ProjectID != 0 {
		input.ProjectID = &query.ProjectID
	}
	if query.Status != "" {
		input.Status = &query.Status
	}
	if query.Priority != "" {
		input.Priority = &query.Priority
	}

	tasks, total, err := h.taskService.ListTasks(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respondList(c, total, dto.ToTaskResponses(tasks))
}

// GetTask returns a task with owner, project, assignees and subtask count
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, subtasks, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDetailResponse(*task, subtasks))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.TaskCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), current, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

// UpdateTask updates only the fields present in the body
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TaskUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), current, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// DeleteTask deletes a task and its subtasks
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), current, id); err != nil {
		_ = c.Error(err)
		return
	}

	noContent(c)
}
