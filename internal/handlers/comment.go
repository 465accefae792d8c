package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListTaskComments returns a task's comments, newest first
func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	taskID, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	page, ok := pagination(c)
	if !ok {
		return
	}

	comments, total, err := h.commentService.ListByTask(c.Request.Context(), taskID, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respondList(c, total, dto.ToCommentResponses(comments))
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(*comment))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CommentCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), current, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(*comment))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CommentUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), current, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(*comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), current, id); err != nil {
		_ = c.Error(err)
		return
	}

	noContent(c)
}
