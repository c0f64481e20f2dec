package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	Store store.Store
}

func (s *ProjectService) CreateProject(ctx context.Context, orgID, actorID idx.ID, name, description string) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Project{}, ErrInvalidRequest
	}

	project := domain.Project{
		ID:          idx.New(),
		OrgID:       orgID,
		Name:        name,
		Description: description,
		Status:      domain.StatusActive,
		CreatedAt:   nowUTC(),
		UpdatedAt:   nowUTC(),
	}

	if err := s.Store.Projects().CreateProject(ctx, project, actorID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return domain.Project{}, ErrNotAllowed
		}
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("org_id", orgID.String()),
	)
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID, actorID idx.ID) (domain.Project, error) {
	project, err := s.Store.Projects().GetProjectByID(ctx, projectID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, orgID, actorID idx.ID) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx, orgID, actorID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID, actorID idx.ID, name, description string) error {
	if name == "" {
		return ErrInvalidRequest
	}
	return mapGuard(ctx, "update project", s.Store.Projects().UpdateProject(ctx, projectID, actorID, name, description))
}

func (s *ProjectService) ToggleProject(ctx context.Context, projectID, actorID idx.ID) error {
	return mapGuard(ctx, "toggle project", s.Store.Projects().ToggleProjectStatus(ctx, projectID, actorID))
}

// AddAdmin grants project-scoped admin rights to an org member.
func (s *ProjectService) AddAdmin(ctx context.Context, projectID, userID, actorID idx.ID) error {
	pa := domain.ProjectAdmin{
		ID:        idx.New(),
		ProjectID: projectID,
		UserID:    userID,
		Status:    domain.StatusActive,
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}
	return mapGuard(ctx, "add project admin", s.Store.ProjectAdmins().AddProjectAdmin(ctx, pa, actorID))
}

func (s *ProjectService) ListAdmins(ctx context.Context, projectID, actorID idx.ID) ([]domain.MemberProfile, error) {
	return s.Store.ProjectAdmins().ListProjectAdmins(ctx, projectID, actorID)
}

func (s *ProjectService) RemoveAdmin(ctx context.Context, projectID, userID, actorID idx.ID) error {
	return mapGuard(ctx, "remove project admin", s.Store.ProjectAdmins().RemoveProjectAdmin(ctx, projectID, userID, actorID))
}
