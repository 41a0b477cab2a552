package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/infrastructure/persistence/mappers"
	"secretsanta/internal/infrastructure/persistence/models"
	db "secretsanta/internal/shared/db"
	"secretsanta/internal/shared/mapper"
)

type PoolRepository struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	mapper mappers.PoolMapper
}

func NewPoolRepository(gdb *gorm.DB) *PoolRepository {
	return &PoolRepository{
		db:     gdb,
		txMgr:  db.NewTransactionManager(gdb),
		mapper: mappers.NewPoolMapper(),
	}
}

func (r *PoolRepository) Save(ctx context.Context, p *pool.Pool) error {
	return r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		model := r.mapper.ToModel(p)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save pool: %w", err)
		}
		if err := p.SetID(model.ID); err != nil {
			return err
		}

		entries := p.Entries()
		for _, e := range entries {
			entryModel := r.mapper.EntryToModel(e)
			entryModel.MatchID = nil
			if err := tx.Create(entryModel).Error; err != nil {
				return fmt.Errorf("failed to save entry: %w", err)
			}
			if err := e.SetID(entryModel.ID); err != nil {
				return err
			}
		}

		// Matches reference sibling entries, so they are written once every entry has an ID.
		for _, e := range entries {
			if e.Match() == nil {
				continue
			}
			if err := tx.Model(&models.EntryModel{}).
				Where("id = ?", e.ID()).
				Update("match_id", e.Match().ID()).Error; err != nil {
				return fmt.Errorf("failed to save match: %w", err)
			}
		}

		return nil
	})
}

func (r *PoolRepository) GetByListURL(ctx context.Context, listURL string) (*pool.Pool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PoolModel
	if err := tx.Where("list_url = ?", listURL).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pool.ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to find pool: %w", err)
	}

	var entryModels []models.EntryModel
	if err := tx.Where("pool_id = ?", model.ID).Order("id ASC").Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	return r.mapper.ToDomain(&model, entryModels)
}

func (r *PoolRepository) MarkSent(ctx context.Context, poolID uint, sentAt time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PoolModel{}).
		Where("id = ? AND sent_date IS NULL", poolID).
		Update("sent_date", sentAt.UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to mark pool as sent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.PoolModel{}).Where("id = ?", poolID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check pool: %w", err)
		}
		if count == 0 {
			return pool.ErrPoolNotFound
		}
		return pool.ErrPoolAlreadySent
	}

	return nil
}

func (r *PoolRepository) FindAllAdminPools(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	return r.findAdminPools(ctx, email, since)
}

func (r *PoolRepository) FindPoolsToReuse(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	return r.findAdminPools(ctx, email, since)
}

func (r *PoolRepository) findAdminPools(ctx context.Context, email string, since time.Time) ([]pool.AdminPoolSummary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AdminPoolRow
	err := tx.Table("pools AS p").
		Select("p.list_url, p.event_date, p.locale, p.location").
		Joins("JOIN entries AS e ON e.pool_id = p.id").
		Where("e.is_pool_admin = ?", true).
		Where("e.email = ?", email).
		Where("p.event_date >= ?", since.UTC()).
		Order("p.event_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query admin pools: %w", err)
	}

	return mapper.MapSlice(rows, func(row models.AdminPoolRow) pool.AdminPoolSummary {
		return r.mapper.SummaryToDomain(&row)
	}), nil
}
