// Package noterepo is the gorm-backed coaching-notes store.
package noterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/domain/note"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/infrastructure/database/dbschema"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/functional"
	"github.com/LYHM-SGP/LeaderStrengthsCoach/internal/utils/platformerrors"
)

type NoteGormRepository struct {
	db *gorm.DB
}

var _ note.Repository = (*NoteGormRepository)(nil)

func NewNoteGormRepository(db *gorm.DB) note.Repository {
	return &NoteGormRepository{db}
}

// Create implements note.Repository.
func (repo *NoteGormRepository) Create(ctx context.Context, n *note.Note) error {
	model := dbschema.NewSchemaNote(n)
	if err := repo.db.WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to create note", err)
	}
	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	n.UpdatedAt = model.UpdatedAt
	return nil
}

// ListByUser implements note.Repository.
func (repo *NoteGormRepository) ListByUser(ctx context.Context, userID string) ([]*note.Note, error) {
	var rows []*dbschema.CoachingNote
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to list notes", err)
	}
	return functional.Map(rows, func(row *dbschema.CoachingNote) *note.Note {
		return row.EtoD()
	}), nil
}

// Delete implements note.Repository.
func (repo *NoteGormRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&dbschema.CoachingNote{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "failed to delete note", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "note not found", errors.New("no rows deleted"))
	}
	return nil
}
