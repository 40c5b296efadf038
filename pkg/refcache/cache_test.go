package refcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alou/yoga-journal/pkg/models"
)

type mockReferenceRepo struct {
	LocationsFunc  func(ctx context.Context) ([]*models.Location, error)
	ClassTypesFunc func(ctx context.Context) ([]*models.ClassType, error)
	ThemesFunc     func(ctx context.Context) ([]*models.Theme, error)

	LocationsCalls  int
	ClassTypesCalls int
	ThemesCalls     int
}

func (m *mockReferenceRepo) Locations(ctx context.Context) ([]*models.Location, error) {
	m.LocationsCalls++
	if m.LocationsFunc != nil {
		return m.LocationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepo) ClassTypes(ctx context.Context) ([]*models.ClassType, error) {
	m.ClassTypesCalls++
	if m.ClassTypesFunc != nil {
		return m.ClassTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockReferenceRepo) Themes(ctx context.Context) ([]*models.Theme, error) {
	m.ThemesCalls++
	if m.ThemesFunc != nil {
		return m.ThemesFunc(ctx)
	}
	return nil, nil
}

func TestCache_ServesFromSnapshotWithinTTL(t *testing.T) {
	repo := &mockReferenceRepo{
		LocationsFunc: func(ctx context.Context) ([]*models.Location, error) {
			return []*models.Location{{ID: 1, Name: "Equinox Pine Street"}}, nil
		},
	}
	cache := New(repo, time.Minute)

	first, err := cache.Locations(context.Background())
	require.NoError(t, err)
	second, err := cache.Locations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.LocationsCalls, "second read within TTL must not hit the repository")
}

func TestCache_RefreshesAfterTTL(t *testing.T) {
	repo := &mockReferenceRepo{
		ThemesFunc: func(ctx context.Context) ([]*models.Theme, error) {
			return []*models.Theme{{ID: 1, Name: "Hip Openers"}}, nil
		},
	}
	cache := New(repo, time.Minute)

	current := time.Now()
	cache.now = func() time.Time { return current }

	_, err := cache.Themes(context.Background())
	require.NoError(t, err)

	current = current.Add(61 * time.Second)

	_, err = cache.Themes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.ThemesCalls)
}

func TestCache_InvalidateForcesRefetch(t *testing.T) {
	repo := &mockReferenceRepo{
		ClassTypesFunc: func(ctx context.Context) ([]*models.ClassType, error) {
			return []*models.ClassType{{ID: 1, Name: "Vinyasa"}}, nil
		},
	}
	cache := New(repo, time.Minute)

	_, err := cache.ClassTypes(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.ClassTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.ClassTypesCalls)
}

func TestCache_ErrorsPropagate(t *testing.T) {
	repoErr := errors.New("warehouse unreachable")
	repo := &mockReferenceRepo{
		LocationsFunc: func(ctx context.Context) ([]*models.Location, error) {
			return nil, repoErr
		},
	}
	cache := New(repo, time.Minute)

	_, err := cache.Locations(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestCache_ErrorDoesNotPoisonSnapshot(t *testing.T) {
	healthy := false
	repo := &mockReferenceRepo{
		LocationsFunc: func(ctx context.Context) ([]*models.Location, error) {
			if !healthy {
				return nil, errors.New("transient")
			}
			return []*models.Location{{ID: 1, Name: "Equinox Van Ness"}}, nil
		},
	}
	cache := New(repo, time.Minute)

	_, err := cache.Locations(context.Background())
	require.Error(t, err)

	healthy = true
	locations, err := cache.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Equinox Van Ness", locations[0].Name)
}

func TestCache_NonPositiveTTLUsesDefault(t *testing.T) {
	cache := New(&mockReferenceRepo{}, 0)
	assert.Equal(t, DefaultTTL, cache.ttl)
}
