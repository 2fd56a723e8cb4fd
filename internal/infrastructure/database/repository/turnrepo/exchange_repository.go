// Package turnrepo is the gorm-backed conversation store.
package turnrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/coaching"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/dbschema"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/functional"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

type ExchangeGormRepository struct {
	db *gorm.DB
}

var _ coaching.ExchangeRepository = (*ExchangeGormRepository)(nil)

func NewExchangeGormRepository(db *gorm.DB) coaching.ExchangeRepository {
	return &ExchangeGormRepository{db}
}

// Append implements coaching.ExchangeRepository.
func (repo *ExchangeGormRepository) Append(ctx context.Context, exchange *coaching.Exchange) error {
	model := dbschema.NewSchemaExchange(exchange)
	if err := repo.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to append exchange", err)
	}
	exchange.ID = model.ID
	exchange.CreatedAt = model.CreatedAt
	return nil
}

// GetRecent implements coaching.ExchangeRepository. Rows come back oldest
// first so callers can treat the slice as chronological history.
func (repo *ExchangeGormRepository) GetRecent(ctx context.Context, conversationID string, limit int) ([]*coaching.Exchange, error) {
	var rows []*dbschema.CoachingExchange
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to load exchanges", err)
	}

	// Reverse the newest-first page into chronological order.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return functional.Map(rows, func(row *dbschema.CoachingExchange) *coaching.Exchange {
		return row.EtoD()
	}), nil
}

// Clear implements coaching.ExchangeRepository.
func (repo *ExchangeGormRepository) Clear(ctx context.Context, conversationID string) error {
	err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Delete(&dbschema.CoachingExchange{}).Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to clear conversation", err)
	}
	return nil
}
