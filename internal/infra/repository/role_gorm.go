package repository

import (
	"context"
	"errors"

	"fashionstore/internal/domain/model"
	repo "fashionstore/internal/repository"

	"gorm.io/gorm"
)

type RoleGormRepository struct {
	db *gorm.DB
}

func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) FindByID(ctx context.Context, roleID int64) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).First(&role, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}
