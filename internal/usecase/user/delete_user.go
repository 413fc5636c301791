package user

import (
	"context"

	"github.com/gymstack/gym-manager/internal/audit"
	domain "github.com/gymstack/gym-manager/internal/domain/user"
	"github.com/gymstack/gym-manager/internal/httperr"
	"github.com/gymstack/gym-manager/internal/models"
)

// DeleteUser removes an account, refusing to delete the last
// remaining administrator so the system can never lock itself out.
type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	actorID uint,
	targetID uint,
) error {

	target, err := uc.repo.GetUserByID(ctx, targetID)
	if err != nil {
		return httperr.ErrBusiness("user_not_found")
	}

	if target.Role == models.RoleAdmin {
		admins, err := uc.repo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return httperr.ErrBusiness("last_admin")
		}
	}

	if err := uc.repo.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &targetID,
		Metadata: map[string]string{"username": target.Username},
	})

	return nil
}
