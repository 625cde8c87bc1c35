package mysql

import (
	"context"

	"gorm.io/gorm"
)

type ProbeRow struct {
	Test int `json:"test" gorm:"column:test"`
}

// Probe checks store connectivity for GET /api/test.
type Probe struct{ db *gorm.DB }

func NewProbe(db *gorm.DB) *Probe { return &Probe{db: db} }

func (p *Probe) Ping(ctx context.Context) ([]ProbeRow, error) {
	var rows []ProbeRow
	if err := p.db.WithContext(ctx).Raw("SELECT 1 AS test").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
