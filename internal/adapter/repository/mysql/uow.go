package mysql

import (
	"context"
	"fmt"

	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/domain/uow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type GormUoW struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewGormUoW(db *gorm.DB, log logrus.FieldLogger) *GormUoW {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &GormUoW{db: db, log: log}
}

// WithinTx holds one pooled connection for the lifetime of fn. Commit and
// Rollback both hand it back to the pool, and a panic in fn rolls back
// before propagating.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: begin: %v", application.ErrStoreUnavailable, tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			u.rollback(tx)
			panic(p)
		}
	}()

	r := uow.Repos{
		Applications: &ApplicationRepository{db: tx},
		Customers:    &CustomerRepository{db: tx},
	}
	if err := fn(r); err != nil {
		u.rollback(tx)
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (u *GormUoW) rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		u.log.WithError(err).Error("transaction rollback failed")
	}
}
