package repository

import (
	"context"

	"boutique/internal/domain/model"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (model.AdminUser, error)
}
