package repository

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"secretsanta/internal/domain/pool"
	"secretsanta/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: opens a fresh database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.PoolModel{}, &models.EntryModel{})
	require.NoError(t, err)

	return db
}

func date(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// createTestPool builds a matched pool whose first entry is the administrator.
func createTestPool(t *testing.T, adminEmail string, eventDate *time.Time, locale string) *pool.Pool {
	p, err := pool.NewPool(gofakeit.Name(), adminEmail, locale, "Hi (NAME)", eventDate, gofakeit.City())
	require.NoError(t, err)

	admin, err := pool.NewEntry(gofakeit.Name(), adminEmail, true)
	require.NoError(t, err)
	require.NoError(t, p.AddEntry(admin))
	for i := 0; i < 2; i++ {
		e, err := pool.NewEntry(gofakeit.Name(), gofakeit.Email(), false)
		require.NoError(t, err)
		require.NoError(t, p.AddEntry(e))
	}

	entries := p.Entries()
	for i, e := range entries {
		require.NoError(t, e.SetMatch(entries[(i+1)%len(entries)]))
	}
	return p
}

func TestPoolRepository_SaveAndGetByListURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoolRepository(db)
	ctx := context.Background()

	p := createTestPool(t, "admin@example.com", date(time.Now().AddDate(0, 1, 0)), "nl")
	require.NoError(t, repo.Save(ctx, p))
	assert.NotZero(t, p.ID())

	found, err := repo.GetByListURL(ctx, p.ListURL())
	require.NoError(t, err)
	assert.Equal(t, p.OwnerName(), found.OwnerName())
	assert.Equal(t, "nl", found.Locale())
	assert.True(t, found.IsMatched())
	assert.False(t, found.IsSent())

	want := p.Entries()
	got := found.Entries()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID(), got[i].ID())
		assert.Equal(t, want[i].Email(), got[i].Email())
		assert.Equal(t, want[i].URL(), got[i].URL())
		assert.Equal(t, want[i].Match().ID(), got[i].Match().ID())
	}
	assert.True(t, got[0].IsPoolAdmin())
	require.NotNil(t, found.EventDate())
	assert.True(t, p.EventDate().Equal(*found.EventDate()))
}

func TestPoolRepository_GetByListURL_NotFound(t *testing.T) {
	repo := NewPoolRepository(setupTestDB(t))

	_, err := repo.GetByListURL(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, pool.ErrPoolNotFound)
}

func TestPoolRepository_MarkSent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoolRepository(db)
	ctx := context.Background()

	p := createTestPool(t, "admin@example.com", nil, "en")
	require.NoError(t, repo.Save(ctx, p))

	t.Run("first send is stored", func(t *testing.T) {
		err := repo.MarkSent(ctx, p.ID(), time.Now())
		require.NoError(t, err)

		found, err := repo.GetByListURL(ctx, p.ListURL())
		require.NoError(t, err)
		assert.True(t, found.IsSent())
	})

	t.Run("second send is rejected", func(t *testing.T) {
		err := repo.MarkSent(ctx, p.ID(), time.Now())
		assert.ErrorIs(t, err, pool.ErrPoolAlreadySent)
	})

	t.Run("unknown pool", func(t *testing.T) {
		err := repo.MarkSent(ctx, p.ID()+100, time.Now())
		assert.ErrorIs(t, err, pool.ErrPoolNotFound)
	})
}

func TestPoolRepository_AdminPoolQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoolRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	adminEmail := "admin@example.com"

	past := createTestPool(t, adminEmail, date(now.AddDate(0, 0, -10)), "en")
	soon := createTestPool(t, adminEmail, date(now.AddDate(0, 0, 1)), "fr")
	later := createTestPool(t, adminEmail, date(now.AddDate(0, 2, 0)), "de")
	ancient := createTestPool(t, adminEmail, date(now.AddDate(-3, 0, 0)), "en")
	other := createTestPool(t, "someone@example.com", date(now.AddDate(0, 0, 3)), "en")

	// Saved out of order so the result order comes from the query.
	for _, p := range []*pool.Pool{later, past, other, ancient, soon} {
		require.NoError(t, repo.Save(ctx, p))
	}

	summary := func(p *pool.Pool) pool.AdminPoolSummary {
		return pool.AdminPoolSummary{
			ListURL:   p.ListURL(),
			EventDate: p.EventDate(),
			Locale:    p.Locale(),
			Location:  p.Location(),
		}
	}
	timeEqual := cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

	t.Run("manage link window excludes past parties", func(t *testing.T) {
		got, err := repo.FindAllAdminPools(ctx, adminEmail, pool.ManageLinkCutoff(now))
		require.NoError(t, err)

		want := []pool.AdminPoolSummary{summary(soon), summary(later)}
		if diff := cmp.Diff(want, got, timeEqual); diff != "" {
			t.Errorf("FindAllAdminPools mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reuse window includes recent past parties", func(t *testing.T) {
		got, err := repo.FindPoolsToReuse(ctx, adminEmail, pool.ReuseCutoff(now))
		require.NoError(t, err)

		want := []pool.AdminPoolSummary{summary(past), summary(soon), summary(later)}
		if diff := cmp.Diff(want, got, timeEqual); diff != "" {
			t.Errorf("FindPoolsToReuse mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("participants who are not admin are not matched", func(t *testing.T) {
		participant := other.Entries()[1].Email()
		got, err := repo.FindPoolsToReuse(ctx, participant, pool.ReuseCutoff(now))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown email", func(t *testing.T) {
		got, err := repo.FindAllAdminPools(ctx, "nobody@example.com", pool.ManageLinkCutoff(now))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
