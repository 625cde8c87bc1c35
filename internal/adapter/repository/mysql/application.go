package mysql

import (
	"context"

	appDomain "loan-application-api/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.NewApplication) error {
	return insert(ctx, r.db, a.TableName(), a)
}
