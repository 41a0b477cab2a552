package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/infrastructure/persistence/models"
)

// PoolMapper handles the conversion between Pool aggregates and persistence models.
type PoolMapper interface {
	ToModel(p *pool.Pool) *models.PoolModel
	EntryToModel(e *pool.Entry) *models.EntryModel
	// ToDomain rebuilds the aggregate, resolving entry matches by ID.
	ToDomain(model *models.PoolModel, entries []models.EntryModel) (*pool.Pool, error)
	SummaryToDomain(row *models.AdminPoolRow) pool.AdminPoolSummary
}

type PoolMapperImpl struct{}

func NewPoolMapper() PoolMapper {
	return &PoolMapperImpl{}
}

func (m *PoolMapperImpl) ToModel(p *pool.Pool) *models.PoolModel {
	return &models.PoolModel{
		ID:         p.ID(),
		ListURL:    p.ListURL(),
		OwnerName:  p.OwnerName(),
		OwnerEmail: p.OwnerEmail(),
		Locale:     p.Locale(),
		Message:    p.Message(),
		EventDate:  toDate(p.EventDate()),
		Location:   p.Location(),
		SentDate:   p.SentDate(),
		CreatedAt:  p.CreatedAt(),
	}
}

func (m *PoolMapperImpl) EntryToModel(e *pool.Entry) *models.EntryModel {
	model := &models.EntryModel{
		ID:          e.ID(),
		PoolID:      e.PoolID(),
		Name:        e.Name(),
		Email:       e.Email(),
		URL:         e.URL(),
		IsPoolAdmin: e.IsPoolAdmin(),
		CreatedAt:   e.CreatedAt(),
	}
	if match := e.Match(); match != nil && match.ID() != 0 {
		matchID := match.ID()
		model.MatchID = &matchID
	}
	return model
}

func (m *PoolMapperImpl) ToDomain(model *models.PoolModel, entryModels []models.EntryModel) (*pool.Pool, error) {
	entries := make([]*pool.Entry, 0, len(entryModels))
	byID := make(map[uint]*pool.Entry, len(entryModels))
	for i := range entryModels {
		em := &entryModels[i]
		e, err := pool.ReconstructEntry(em.ID, em.PoolID, em.Name, em.Email, em.URL, em.IsPoolAdmin, em.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct entry (id=%d): %w", em.ID, err)
		}
		entries = append(entries, e)
		byID[em.ID] = e
	}

	for i := range entryModels {
		em := &entryModels[i]
		if em.MatchID == nil {
			continue
		}
		match, ok := byID[*em.MatchID]
		if !ok {
			return nil, fmt.Errorf("entry %d is matched with unknown entry %d", em.ID, *em.MatchID)
		}
		if err := byID[em.ID].SetMatch(match); err != nil {
			return nil, fmt.Errorf("invalid match for entry %d: %w", em.ID, err)
		}
	}

	return pool.ReconstructPool(
		model.ID,
		model.ListURL,
		model.OwnerName,
		model.OwnerEmail,
		model.Locale,
		model.Message,
		fromDate(model.EventDate),
		model.Location,
		model.SentDate,
		model.CreatedAt,
		entries,
	)
}

func (m *PoolMapperImpl) SummaryToDomain(row *models.AdminPoolRow) pool.AdminPoolSummary {
	return pool.AdminPoolSummary{
		ListURL:   row.ListURL,
		EventDate: fromDate(row.EventDate),
		Locale:    row.Locale,
		Location:  row.Location,
	}
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(t.UTC())
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d).UTC()
	return &t
}
