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

var ErrTeamNotFound = errors.New("team not found")

type TeamService struct {
	Store store.Store
}

func (s *TeamService) CreateTeam(ctx context.Context, orgID, actorID idx.ID, name, description string) (domain.Team, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Team{}, ErrInvalidRequest
	}

	team := domain.Team{
		ID:          idx.New(),
		OrgID:       orgID,
		Name:        name,
		Description: description,
		Status:      domain.StatusActive,
		CreatedAt:   nowUTC(),
		UpdatedAt:   nowUTC(),
	}

	if err := s.Store.Teams().CreateTeam(ctx, team, actorID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return domain.Team{}, ErrNotAllowed
		}
		log.Error("failed to create team", slog.Any("error", err))
		return domain.Team{}, err
	}

	log.Info("team created",
		slog.String("team_id", team.ID.String()),
		slog.String("org_id", orgID.String()),
	)
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID, actorID idx.ID) (domain.Team, error) {
	team, err := s.Store.Teams().GetTeamByID(ctx, teamID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Team{}, ErrTeamNotFound
		}
		return domain.Team{}, err
	}
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context, orgID, actorID idx.ID) ([]domain.Team, error) {
	return s.Store.Teams().ListTeams(ctx, orgID, actorID)
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID, actorID idx.ID, name, description string) error {
	if name == "" {
		return ErrInvalidRequest
	}
	return mapGuard(ctx, "update team", s.Store.Teams().UpdateTeam(ctx, teamID, actorID, name, description))
}

func (s *TeamService) ToggleTeam(ctx context.Context, teamID, actorID idx.ID) error {
	return mapGuard(ctx, "toggle team", s.Store.Teams().ToggleTeamStatus(ctx, teamID, actorID))
}

// AddMember puts an org member on the team. The store statement verifies
// both the actor's admin role and the target's org membership.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID, actorID idx.ID) error {
	tm := domain.TeamMember{
		ID:        idx.New(),
		TeamID:    teamID,
		UserID:    userID,
		Status:    domain.StatusActive,
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}
	return mapGuard(ctx, "add team member", s.Store.TeamMembers().AddTeamMember(ctx, tm, actorID))
}

func (s *TeamService) ListMembers(ctx context.Context, teamID, actorID idx.ID) ([]domain.MemberProfile, error) {
	return s.Store.TeamMembers().ListTeamMembers(ctx, teamID, actorID)
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID, actorID idx.ID) error {
	return mapGuard(ctx, "remove team member", s.Store.TeamMembers().RemoveTeamMember(ctx, teamID, userID, actorID))
}

// mapGuard translates the store's guard failure into the service error,
// logging the blocked attempt.
func mapGuard(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	log := slogx.FromContext(ctx)
	if errors.Is(err, store.ErrNotAllowed) {
		log.Warn("operation blocked", slog.String("op", op))
		return ErrNotAllowed
	}
	log.Error("operation failed", slog.String("op", op), slog.Any("error", err))
	return err
}
