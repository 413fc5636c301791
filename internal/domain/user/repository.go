package user

import (
	"context"

	"github.com/gymstack/gym-manager/internal/models"
)

type Repository interface {
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	CountAdmins(
		ctx context.Context,
	) (int64, error)

	DeleteUser(
		ctx context.Context,
		id uint,
	) error
}
