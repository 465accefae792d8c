package dto

import (
	"time"

	"github.com/viltrumflow/taskflow-api/internal/models"
)

// CommentCreateRequest adds a comment to a task.
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
	TaskID  uint64 `json:"task_id" binding:"required"`
}

// CommentUpdateRequest replaces a comment's content.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentResponse is the read view of a comment.
type CommentResponse struct {
	ID        uint64       `json:"id"`
	Content   string       `json:"content"`
	TaskID    uint64       `json:"task_id"`
	AuthorID  uint64       `json:"author_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Author    UserResponse `json:"author"`
}

// ToCommentResponse converts a Comment.
func ToCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Author:    ToUserResponse(c.Author),
	}
}

// ToCommentResponses converts a list of comments.
func ToCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = ToCommentResponse(c)
	}
	return out
}
