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

var (
	ErrNotAllowed  = errors.New("not allowed")
	ErrOrgNotFound = errors.New("organization not found")
)

type OrganizationService struct {
	Store store.Store
}

// CreateOrganization makes a new org with the caller as its first Admin.
// The two inserts share a transaction so an org can never exist without
// an admin.
func (s *OrganizationService) CreateOrganization(ctx context.Context, actorID idx.ID, name, description string) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Organization{}, ErrInvalidRequest
	}

	org := domain.Organization{
		ID:          idx.New(),
		Name:        name,
		Description: description,
		Status:      domain.StatusActive,
		CreatedAt:   nowUTC(),
		UpdatedAt:   nowUTC(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			return err
		}
		return tx.Members().CreateMember(ctx, domain.Member{
			ID:        idx.New(),
			OrgID:     org.ID,
			UserID:    actorID,
			Role:      domain.RoleAdmin,
			Status:    domain.StatusActive,
			CreatedAt: nowUTC(),
			UpdatedAt: nowUTC(),
		})
	})
	if err != nil {
		log.Error("failed to create organization", slog.Any("error", err))
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("org_id", org.ID.String()),
		slog.String("user_id", actorID.String()),
	)
	return org, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, orgID, actorID idx.ID) (domain.Organization, error) {
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrOrgNotFound
		}
		return domain.Organization{}, err
	}
	return org, nil
}

func (s *OrganizationService) ListMine(ctx context.Context, actorID idx.ID) ([]domain.OrgSummary, error) {
	return s.Store.Organizations().ListOrganizationsForUser(ctx, actorID)
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, orgID, actorID idx.ID, name, description string) error {
	if name == "" {
		return ErrInvalidRequest
	}
	return s.guarded(ctx, "update organization", orgID, actorID, func() error {
		return s.Store.Organizations().UpdateOrganization(ctx, orgID, actorID, name, description)
	})
}

func (s *OrganizationService) ToggleOrganization(ctx context.Context, orgID, actorID idx.ID) error {
	return s.guarded(ctx, "toggle organization", orgID, actorID, func() error {
		return s.Store.Organizations().ToggleOrganizationStatus(ctx, orgID, actorID)
	})
}

// guarded runs a store mutation whose authorization is baked into the
// statement, mapping the guard failure onto the service error.
func (s *OrganizationService) guarded(ctx context.Context, op string, orgID, actorID idx.ID, fn func() error) error {
	log := slogx.FromContext(ctx)
	if err := fn(); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			log.Warn("operation blocked",
				slog.String("op", op),
				slog.String("org_id", orgID.String()),
				slog.String("user_id", actorID.String()),
			)
			return ErrNotAllowed
		}
		log.Error("operation failed", slog.String("op", op), slog.Any("error", err))
		return err
	}
	return nil
}
