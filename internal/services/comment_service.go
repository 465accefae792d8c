package services

import (
	"context"

	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
	"github.com/viltrumflow/taskflow-api/internal/utils"
)

// CommentService handles task comments
type CommentService struct {
	store *repository.Store
}

// NewCommentService creates a new CommentService
func NewCommentService(store *repository.Store) *CommentService {
	return &CommentService{store: store}
}

// ListByTask returns the comments of a task, newest first
func (s *CommentService) ListByTask(ctx context.Context, taskID uint64, page utils.PaginationParams) ([]models.Comment, int64, error) {
	var (
		comments []models.Comment
		total    int64
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Tasks.Exists(taskID)
		if err != nil {
			return err
		}
		if !exists {
			return apierrors.NotFound("Task not found")
		}
		comments, total, err = repos.Comments.ListByTask(taskID, page)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *CommentService) Get(ctx context.Context, id uint64) (*models.Comment, error) {
	var comment *models.Comment
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		comment, err = repos.Comments.FindByID(id)
		return notFound(err, "Comment not found")
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Create adds a comment by actor on an existing task
func (s *CommentService) Create(ctx context.Context, actor *models.User, req dto.CommentCreateRequest) (*models.Comment, error) {
	var created *models.Comment
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Tasks.Exists(req.TaskID)
		if err != nil {
			return err
		}
		if !exists {
			return apierrors.NotFound("Task not found")
		}

		comment := &models.Comment{
			Content:  req.Content,
			TaskID:   req.TaskID,
			AuthorID: actor.ID,
		}
		if err := repos.Comments.Create(comment); err != nil {
			return err
		}

		created, err = repos.Comments.FindByID(comment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces the content. Only the author or a superuser may edit.
func (s *CommentService) Update(ctx context.Context, actor *models.User, id uint64, req dto.CommentUpdateRequest) (*models.Comment, error) {
	var updated *models.Comment
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		comment, err := repos.Comments.FindByID(id)
		if err != nil {
			return notFound(err, "Comment not found")
		}
		if !canModify(actor, comment.AuthorID) {
			return apierrors.Forbidden("Not enough permissions")
		}

		if err := repos.Comments.Update(id, map[string]interface{}{"content": req.Content}); err != nil {
			return err
		}

		updated, err = repos.Comments.FindByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, actor *models.User, id uint64) error {
	return s.store.Do(ctx, func(repos repository.Repositories) error {
		comment, err := repos.Comments.FindByID(id)
		if err != nil {
			return notFound(err, "Comment not found")
		}
		if !canModify(actor, comment.AuthorID) {
			return apierrors.Forbidden("Not enough permissions")
		}
		return repos.Comments.Delete(id)
	})
}
