package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/opencrew/taskhub/internal/taskhub/domain"
	"github.com/opencrew/taskhub/internal/taskhub/mail"
	"github.com/opencrew/taskhub/internal/taskhub/store"
	"github.com/opencrew/taskhub/pkg/cryptox"
	"github.com/opencrew/taskhub/pkg/idx"
	"github.com/opencrew/taskhub/pkg/slogx"
)

var (
	ErrLastAdmin          = errors.New("organization must keep at least one active admin")
	ErrInvitationNotFound = errors.New("invitation not found or expired")
	ErrAlreadyMember      = errors.New("already a member of this organization")
	ErrInvalidRole        = errors.New("invalid role")
)

// InvitationTTL is how long an invitation token stays redeemable.
const InvitationTTL = 7 * 24 * time.Hour

// MembershipService manages who belongs to an organization and with what
// role, including the invitation flow that brings new members in.
type MembershipService struct {
	Store  store.Store
	Mailer mail.Mailer
}

func (s *MembershipService) ListMembers(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error) {
	members, err := s.Store.Members().ListMembers(ctx, orgID, actorID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		// The listing query is guarded, so empty also covers "not an
		// admin". Probe the membership to tell the two apart.
		if ok, err := s.Store.Members().IsActiveAdmin(ctx, orgID, actorID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrNotAllowed
		}
	}
	return members, nil
}

func (s *MembershipService) ListAdmins(ctx context.Context, orgID, actorID idx.ID) ([]domain.MemberProfile, error) {
	return s.Store.Members().ListAdmins(ctx, orgID, actorID)
}

// PromoteMember raises an active Member to Admin.
func (s *MembershipService) PromoteMember(ctx context.Context, orgID, userID, actorID idx.ID) error {
	return s.roleChange(ctx, "promote member", func() error {
		return s.Store.Members().PromoteMember(ctx, orgID, userID, actorID)
	})
}

// DemoteAdmin lowers an Admin to Member. The store statement refuses to
// demote the last active Admin, which surfaces here as ErrLastAdmin.
func (s *MembershipService) DemoteAdmin(ctx context.Context, orgID, userID, actorID idx.ID) error {
	err := s.roleChange(ctx, "demote admin", func() error {
		return s.Store.Members().DemoteAdmin(ctx, orgID, userID, actorID)
	})
	if errors.Is(err, ErrNotAllowed) {
		// Distinguish "would orphan the org" from a plain authz failure
		// so the caller gets an actionable message.
		if target, terr := s.Store.Members().GetMember(ctx, orgID, userID); terr == nil &&
			target.Role == domain.RoleAdmin && target.Status == domain.StatusActive {
			if ok, aerr := s.Store.Members().IsActiveAdmin(ctx, orgID, actorID); aerr == nil && ok {
				return ErrLastAdmin
			}
		}
	}
	return err
}

// RemoveMember soft-deletes a membership, with the same last-admin
// protection as demotion.
func (s *MembershipService) RemoveMember(ctx context.Context, orgID, userID, actorID idx.ID) error {
	err := s.roleChange(ctx, "remove member", func() error {
		return s.Store.Members().RemoveMember(ctx, orgID, userID, actorID)
	})
	if errors.Is(err, ErrNotAllowed) {
		if target, terr := s.Store.Members().GetMember(ctx, orgID, userID); terr == nil &&
			target.Role == domain.RoleAdmin && target.Status == domain.StatusActive {
			if ok, aerr := s.Store.Members().IsActiveAdmin(ctx, orgID, actorID); aerr == nil && ok {
				return ErrLastAdmin
			}
		}
	}
	return err
}

func (s *MembershipService) roleChange(ctx context.Context, op string, fn func() error) error {
	log := slogx.FromContext(ctx)
	if err := fn(); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			log.Warn("membership change blocked", slog.String("op", op))
			return ErrNotAllowed
		}
		log.Error("membership change failed", slog.String("op", op), slog.Any("error", err))
		return err
	}
	return nil
}

// Invite mints a token for an email address and stores only its
// fingerprint. Re-inviting the same address refreshes the pending row
// instead of stacking tokens. Returns the raw token so tests and
// non-mail flows can use it; the email carries it to the invitee.
func (s *MembershipService) Invite(ctx context.Context, orgID, actorID idx.ID, email, role string) (string, error) {
	log := slogx.FromContext(ctx)

	if email == "" {
		return "", ErrInvalidRequest
	}
	if role != domain.RoleAdmin && role != domain.RoleMember {
		return "", ErrInvalidRole
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return "", err
	}

	inv := domain.Invitation{
		ID:        idx.New(),
		OrgID:     orgID,
		Email:     email,
		Role:      role,
		TokenHash: cryptox.FingerprintToken(token),
		Status:    domain.InvitationPending,
		ExpiresAt: nowUTC().Add(InvitationTTL),
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}

	if err := s.Store.Invitations().UpsertInvitation(ctx, inv, actorID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			log.Warn("invite blocked", slog.String("org_id", orgID.String()))
			return "", ErrNotAllowed
		}
		log.Error("failed to store invitation", slog.Any("error", err))
		return "", err
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID, actorID)
	if err != nil {
		return "", err
	}
	if err := s.Mailer.SendInvitation(ctx, email, org.Name, token); err != nil {
		return "", err
	}

	log.Info("invitation sent", slog.String("org_id", orgID.String()))
	return token, nil
}

func (s *MembershipService) ListInvitations(ctx context.Context, orgID, actorID idx.ID) ([]domain.Invitation, error) {
	invs, err := s.Store.Invitations().ListInvitations(ctx, orgID, actorID)
	if err != nil {
		return nil, err
	}
	if len(invs) == 0 {
		if ok, err := s.Store.Members().IsActiveAdmin(ctx, orgID, actorID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrNotAllowed
		}
	}
	return invs, nil
}

// AcceptInvitation redeems a raw token for the signed-in user. The
// invitee's account email must match the invited address. Accepting marks
// the invitation settled and creates (or revives) the membership in one
// transaction.
func (s *MembershipService) AcceptInvitation(ctx context.Context, actor domain.User, token string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.lookupInvitation(ctx, token)
	if err != nil {
		return domain.Member{}, err
	}

	if inv.Email != actor.Email {
		log.Warn("invitation accept attempted by wrong account",
			slog.String("invitation_id", inv.ID.String()),
		)
		return domain.Member{}, ErrInvitationNotFound
	}

	member := domain.Member{
		ID:        idx.New(),
		OrgID:     inv.OrgID,
		UserID:    actor.ID,
		Role:      inv.Role,
		Status:    domain.StatusActive,
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID); err != nil {
			return err
		}

		existing, err := tx.Members().GetMember(ctx, inv.OrgID, actor.ID)
		if err == nil {
			if existing.Status == domain.StatusActive {
				return ErrAlreadyMember
			}
			// Re-invited after removal: revive with the invited role.
			member = existing
			member.Role = inv.Role
			member.Status = domain.StatusActive
			return tx.Members().ReviveMember(ctx, inv.OrgID, actor.ID, inv.Role)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Members().CreateMember(ctx, member)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return domain.Member{}, ErrInvitationNotFound
		}
		if errors.Is(err, ErrAlreadyMember) {
			return domain.Member{}, ErrAlreadyMember
		}
		log.Error("failed to accept invitation", slog.Any("error", err))
		return domain.Member{}, err
	}

	log.Info("invitation accepted",
		slog.String("org_id", inv.OrgID.String()),
		slog.String("user_id", actor.ID.String()),
	)
	return member, nil
}

// DeclineInvitation settles a pending invitation without joining.
func (s *MembershipService) DeclineInvitation(ctx context.Context, actor domain.User, token string) error {
	inv, err := s.lookupInvitation(ctx, token)
	if err != nil {
		return err
	}
	if inv.Email != actor.Email {
		return ErrInvitationNotFound
	}

	if err := s.Store.Invitations().MarkInvitationDeclined(ctx, inv.ID); err != nil {
		if errors.Is(err, store.ErrNotAllowed) {
			return ErrInvitationNotFound
		}
		return err
	}
	return nil
}

func (s *MembershipService) lookupInvitation(ctx context.Context, token string) (domain.Invitation, error) {
	if token == "" {
		return domain.Invitation{}, ErrInvitationNotFound
	}

	hash := cryptox.FingerprintToken(token)
	inv, err := s.Store.Invitations().GetPendingInvitationByTokenHash(ctx, hash, nowUTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		return domain.Invitation{}, err
	}
	return inv, nil
}
