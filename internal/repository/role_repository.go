package repository

import (
	"context"

	"fashionstore/internal/domain/model"
)

type RoleRepository interface {
	FindByID(ctx context.Context, roleID int64) (model.Role, error)
}
