// Package strengthrepo is the gorm-backed strengths store.
package strengthrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/strength"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/dbschema"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/functional"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

type StrengthGormRepository struct {
	db *gorm.DB
}

var _ strength.Repository = (*StrengthGormRepository)(nil)

func NewStrengthGormRepository(db *gorm.DB) strength.Repository {
	return &StrengthGormRepository{db}
}

// ReplaceAll implements strength.Repository. The old ranking and the new one
// swap inside a single transaction so a failed submit never leaves a partial
// list.
func (repo *StrengthGormRepository) ReplaceAll(ctx context.Context, userID string, strengths []*strength.Strength) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Unscoped().Delete(&dbschema.Strength{}).Error; err != nil {
			return err
		}
		rows := functional.Map(strengths, func(s *strength.Strength) *dbschema.Strength {
			row := dbschema.NewSchemaStrength(s)
			row.ID = 0
			row.UserID = userID
			return row
		})
		return tx.Create(rows).Error
	})
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to replace strengths", err)
	}
	return nil
}

// ListByUser implements strength.Repository.
func (repo *StrengthGormRepository) ListByUser(ctx context.Context, userID string) ([]*strength.Strength, error) {
	var rows []*dbschema.Strength
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to list strengths", err)
	}
	return functional.Map(rows, func(row *dbschema.Strength) *strength.Strength {
		return row.EtoD()
	}), nil
}
