package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretsanta/internal/shared/id"
)

func newTestPool(t *testing.T) *Pool {
	eventDate := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	p, err := NewPool("Alice", "alice@example.com", "en", "Hi (NAME)", &eventDate, "Office")
	require.NoError(t, err)
	return p
}

func TestNewPool(t *testing.T) {
	t.Run("valid pool", func(t *testing.T) {
		p := newTestPool(t)
		assert.True(t, id.IsValidListURL(p.ListURL()))
		assert.False(t, p.IsSent())
		assert.Empty(t, p.Entries())
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := NewPool(" ", "alice@example.com", "en", "", nil, "")
		assert.Error(t, err)
	})

	t.Run("missing locale", func(t *testing.T) {
		_, err := NewPool("Alice", "alice@example.com", "", "", nil, "")
		assert.Error(t, err)
	})
}

func TestPool_MarkSent(t *testing.T) {
	p := newTestPool(t)
	now := time.Now()

	require.NoError(t, p.MarkSent(now))
	require.NotNil(t, p.SentDate())
	assert.True(t, p.SentDate().Equal(now))

	err := p.MarkSent(now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrPoolAlreadySent)
	assert.True(t, p.SentDate().Equal(now), "sent date must not move")
}

func TestPool_AddEntry(t *testing.T) {
	p := newTestPool(t)
	bob, err := NewEntry("Bob", "bob@example.com", false)
	require.NoError(t, err)
	require.NoError(t, p.AddEntry(bob))

	dup, err := NewEntry("Bobby", "BOB@example.com", false)
	require.NoError(t, err)
	assert.Error(t, p.AddEntry(dup))

	require.NoError(t, p.MarkSent(time.Now()))
	late, err := NewEntry("Carol", "carol@example.com", false)
	require.NoError(t, err)
	assert.ErrorIs(t, p.AddEntry(late), ErrPoolAlreadySent)
}

func TestPool_IsMatched(t *testing.T) {
	p := newTestPool(t)
	assert.False(t, p.IsMatched())

	a, _ := NewEntry("A", "a@example.com", true)
	b, _ := NewEntry("B", "b@example.com", false)
	require.NoError(t, p.AddEntry(a))
	require.NoError(t, p.AddEntry(b))
	assert.False(t, p.IsMatched())

	require.NoError(t, a.SetMatch(b))
	assert.False(t, p.IsMatched())
	require.NoError(t, b.SetMatch(a))
	assert.True(t, p.IsMatched())
}

func TestEntry_SetMatch(t *testing.T) {
	a, _ := NewEntry("A", "a@example.com", false)
	assert.Error(t, a.SetMatch(a))
	assert.Error(t, a.SetMatch(nil))

	other, err := ReconstructEntry(9, 42, "X", "x@example.com", "token", false, time.Now())
	require.NoError(t, err)
	assert.Error(t, a.SetMatch(other), "entries of different pools")
}

func TestPool_SetIDPropagatesToEntries(t *testing.T) {
	p := newTestPool(t)
	e, _ := NewEntry("Bob", "bob@example.com", false)
	require.NoError(t, p.AddEntry(e))

	require.NoError(t, p.SetID(7))
	assert.Equal(t, uint(7), e.PoolID())
	assert.Error(t, p.SetID(8))
}

func TestPool_EntryByID(t *testing.T) {
	e, err := ReconstructEntry(3, 1, "Bob", "bob@example.com", "u", false, time.Now())
	require.NoError(t, err)
	p, err := ReconstructPool(1, "abcDEF123456", "Alice", "alice@example.com", "en", "", nil, "", nil, time.Now(), []*Entry{e})
	require.NoError(t, err)

	found, err := p.EntryByID(3)
	require.NoError(t, err)
	assert.Same(t, e, found)

	_, err = p.EntryByID(4)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRecencyCutoffs(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 8, 12, 0, 0, 0, time.UTC), ManageLinkCutoff(now))
	assert.Equal(t, time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC), ReuseCutoff(now))

	tenDaysAgo := now.AddDate(0, 0, -10)
	assert.True(t, tenDaysAgo.Before(ManageLinkCutoff(now)))
	assert.False(t, tenDaysAgo.Before(ReuseCutoff(now)))
}
