package services

import (
	"context"
	"errors"

	"github.com/viltrumflow/taskflow-api/internal/constants"
	"github.com/viltrumflow/taskflow-api/internal/dto"
	apierrors "github.com/viltrumflow/taskflow-api/internal/errors"
	"github.com/viltrumflow/taskflow-api/internal/models"
	"github.com/viltrumflow/taskflow-api/internal/repository"
	"github.com/viltrumflow/taskflow-api/internal/utils"
)

// fallbackSlug is used when a project name has no slug-able characters
const fallbackSlug = "project"

// ProjectService handles project business logic
type ProjectService struct {
	store *repository.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *repository.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Create creates a project owned by actor with a unique slug derived from
// its name. A concurrent insert of the same slug makes the probe run again.
func (s *ProjectService) Create(ctx context.Context, actor *models.User, req dto.ProjectCreateRequest) (*models.Project, error) {
	color := req.Color
	if color == "" {
		color = models.DefaultProjectColor
	}

	base := utils.Slugify(req.Name)
	if base == "" {
		base = fallbackSlug
	}

	for attempt := 0; attempt < constants.MaxSlugAttempts; attempt++ {
		project := &models.Project{
			Name:        req.Name,
			Description: req.Description,
			Color:       color,
			Icon:        req.Icon,
			IsActive:    true,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			OwnerID:     actor.ID,
		}

		err := s.store.Do(ctx, func(repos repository.Repositories) error {
			slug, err := nextFreeSlug(repos.Projects, base)
			if err != nil {
				return err
			}
			project.Slug = slug
			return repos.Projects.Create(project)
		})
		if err == nil {
			return project, nil
		}
		if !errors.Is(err, apierrors.ErrConflict) {
			return nil, err
		}
	}

	return nil, apierrors.Conflict("Could not allocate a unique project slug")
}

// nextFreeSlug probes base, base-1, base-2, ... and returns the first unused one
func nextFreeSlug(projects repository.ProjectRepository, base string) (string, error) {
	for n := 0; ; n++ {
		candidate := utils.SlugCandidate(base, n)
		exists, err := projects.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func (s *ProjectService) Get(ctx context.Context, id uint64) (*models.Project, error) {
	var project *models.Project
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		project, err = repos.Projects.FindByID(id)
		return notFound(err, "Project not found")
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project *models.Project
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		project, err = repos.Projects.FindBySlug(slug)
		return notFound(err, "Project not found")
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetWithStats returns the project together with its task counts
func (s *ProjectService) GetWithStats(ctx context.Context, id uint64) (*models.Project, dto.ProjectStats, error) {
	var (
		project *models.Project
		counts  repository.TaskCounts
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		project, err = repos.Projects.FindByID(id)
		if err != nil {
			return notFound(err, "Project not found")
		}
		counts, err = repos.Projects.Stats(id)
		return err
	})
	if err != nil {
		return nil, dto.ProjectStats{}, err
	}

	return project, dto.ProjectStats{
		TotalTasks:      counts.Total,
		CompletedTasks:  counts.Completed,
		InProgressTasks: counts.InProgress,
	}, nil
}

// List returns a page of projects, optionally restricted to one owner
func (s *ProjectService) List(ctx context.Context, ownerID *uint64, page utils.PaginationParams) ([]models.Project, int64, error) {
	var (
		projects []models.Project
		total    int64
	)
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		var err error
		projects, total, err = repos.Projects.List(repository.ProjectFilter{OwnerID: ownerID, Page: page})
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update applies the supplied fields. The slug is fixed at creation.
func (s *ProjectService) Update(ctx context.Context, actor *models.User, id uint64, req dto.ProjectUpdateRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var project *models.Project
	err := s.store.Do(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Projects.FindByID(id)
		if err != nil {
			return notFound(err, "Project not found")
		}
		if !canModify(actor, existing.OwnerID) {
			return apierrors.Forbidden("Not enough permissions")
		}

		if err := repos.Projects.Update(id, req.Changes()); err != nil {
			return err
		}

		project, err = repos.Projects.FindByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project with all of its tasks
func (s *ProjectService) Delete(ctx context.Context, actor *models.User, id uint64) error {
	return s.store.Do(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Projects.FindByID(id)
		if err != nil {
			return notFound(err, "Project not found")
		}
		if !canModify(actor, existing.OwnerID) {
			return apierrors.Forbidden("Not enough permissions")
		}
		return repos.Projects.Delete(id)
	})
}
