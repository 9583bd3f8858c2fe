// Package adapters はanalyticsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"energy_backend/internal/feature/analytics/domain/entity"
	"energy_backend/internal/feature/analytics/usecase"
)

// consumptionGorm はConsumptionRepositoryインターフェースのGORM実装です。
type consumptionGorm struct {
	db *gorm.DB
}

var _ usecase.ConsumptionRepository = (*consumptionGorm)(nil)

// NewConsumptionGorm は指定されたDB接続でconsumptionGormリポジトリの新しいインスタンスを生成します。
func NewConsumptionGorm(db *gorm.DB) *consumptionGorm {
	return &consumptionGorm{db: db}
}

// ListByID はid昇順ですべての消費量レコードを返します。
func (r *consumptionGorm) ListByID(ctx context.Context) ([]entity.Consumption, error) {
	var rows []entity.Consumption
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
