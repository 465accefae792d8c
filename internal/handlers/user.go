package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	"github.com/viltrumflow/taskflow-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers returns a page of users. Superusers only.
func (h *UserHandler) ListUsers(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	page, ok := pagination(c)
	if !ok {
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), current, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	respondList(c, total, dto.ToUserResponses(users))
}

func (h *UserHandler) GetMe(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*current))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	h.update(c, current.ID)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	h.delete(c, current.ID)
}

func (h *UserHandler) ChangeMyPassword(c *gin.Context) {
	current, ok := actor(c)
	if !ok {
		return
	}
	h.changePassword(c, current.ID)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.update(c, id)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.delete(c, id)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.changePassword(c, id)
}

func (h *UserHandler) update(c *gin.Context, id uint64) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.UserUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), current, id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) delete(c *gin.Context, id uint64) {
	current, ok := actor(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), current, id); err != nil {
		_ = c.Error(err)
		return
	}

	noContent(c)
}

func (h *UserHandler) changePassword(c *gin.Context, id uint64) {
	current, ok := actor(c)
	if !ok {
		return
	}
	var req dto.PasswordChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), current, id, req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
