package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalzen-backend/models"
)

func newTestSession(key string, created time.Time) *models.Session {
	return &models.Session{
		Key:          key,
		DocumentText: "text for " + key,
		Analysis:     &models.DocumentAnalysis{DocumentType: models.DocumentTypeGeneric},
		Filename:     key + ".txt",
		UploadTime:   created,
	}
}

func TestSessionRepository_PutGet(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()

	_, ok := repo.Get("missing")
	assert.False(t, ok)

	repo.Put(newTestSession("20240101_120000", now))
	got, ok := repo.Get("20240101_120000")
	require.True(t, ok)
	assert.Equal(t, "text for 20240101_120000", got.DocumentText)
	assert.Equal(t, 1, repo.Count())

	t.Run("last write wins", func(t *testing.T) {
		replacement := newTestSession("20240101_120000", now)
		replacement.DocumentText = "replaced"
		repo.Put(replacement)

		got, ok := repo.Get("20240101_120000")
		require.True(t, ok)
		assert.Equal(t, "replaced", got.DocumentText)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("delete", func(t *testing.T) {
		repo.Delete("20240101_120000")
		_, ok := repo.Get("20240101_120000")
		assert.False(t, ok)
		assert.Equal(t, 0, repo.Count())
	})
}

func TestSessionRepository_ListAndLatest(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()

	_, ok := repo.Latest()
	assert.False(t, ok)
	assert.Empty(t, repo.List())

	repo.Put(newTestSession("20240102_090000", now))
	repo.Put(newTestSession("20240101_120000", now))
	repo.Put(newTestSession("20240103_080000", now))

	var keys []string
	for _, s := range repo.List() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"20240101_120000", "20240102_090000", "20240103_080000"}, keys)

	latest, ok := repo.Latest()
	require.True(t, ok)
	assert.Equal(t, "20240103_080000", latest.Key)

	repo.Put(newTestSession(models.DemoSessionKey, now))
	latest, ok = repo.Latest()
	require.True(t, ok)
	assert.Equal(t, models.DemoSessionKey, latest.Key)
}

func TestSessionRepository_Sweep(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	repo.Put(newTestSession("fresh", now.Add(-30*time.Minute)))
	repo.Put(newTestSession("boundary", now.Add(-time.Hour)))
	repo.Put(newTestSession("stale", now.Add(-61*time.Minute)))
	repo.Put(newTestSession("ancient", now.Add(-48*time.Hour)))
	repo.Put(newTestSession(models.DemoSessionKey, now.Add(-48*time.Hour)))
	repo.Put(newTestSession(models.SampleSessionKey, now.Add(-48*time.Hour)))

	removed := repo.Sweep(now, time.Hour, models.ProtectedSessionKeys()...)

	assert.Equal(t, []string{"ancient", "stale"}, removed)
	assert.Equal(t, 4, repo.Count())
	for _, key := range []string{"fresh", "boundary", models.DemoSessionKey, models.SampleSessionKey} {
		_, ok := repo.Get(key)
		assert.True(t, ok, key)
	}

	assert.Empty(t, repo.Sweep(now, time.Hour, models.ProtectedSessionKeys()...))
}

func TestSessionRepository_SweepWithoutProtection(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()
	repo.Put(newTestSession(models.DemoSessionKey, now.Add(-2*time.Hour)))

	assert.Equal(t, []string{models.DemoSessionKey}, repo.Sweep(now, time.Hour))
	assert.Equal(t, 0, repo.Count())
}

func TestSessionRepository_Concurrent(t *testing.T) {
	repo := NewSessionRepository()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			repo.Put(newTestSession(fmt.Sprintf("key_%02d", i), now))
		}(i)
		go func() {
			defer wg.Done()
			repo.Sweep(now, time.Hour)
			repo.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Count())
}
