package fixvalue

import (
	"context"
	"testing"

	"github.com/factrack/factrack-backend-go/internal/domain/fixvalue"
	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFixValueRepo struct {
	values map[string]fixvalue.FixValue // keyed category|month
}

func newFakeFixValueRepo() *fakeFixValueRepo {
	return &fakeFixValueRepo{values: make(map[string]fixvalue.FixValue)}
}

func key(category machine.Category, month string) string {
	return string(category) + "|" + month
}

func (r *fakeFixValueRepo) Create(ctx context.Context, fv fixvalue.FixValue) (fixvalue.FixValue, error) {
	k := key(fv.Category, fv.Month)
	if _, ok := r.values[k]; ok {
		return fixvalue.FixValue{}, fixvalue.ErrFixValueExists
	}
	fv.ID = k
	r.values[k] = fv
	return fv, nil
}

func (r *fakeFixValueRepo) GetByCategoryMonth(ctx context.Context, category machine.Category, month string) (fixvalue.FixValue, error) {
	fv, ok := r.values[key(category, month)]
	if !ok {
		return fixvalue.FixValue{}, fixvalue.ErrFixValueNotFound
	}
	return fv, nil
}

func (r *fakeFixValueRepo) InsertIfAbsent(ctx context.Context, fv fixvalue.FixValue) error {
	k := key(fv.Category, fv.Month)
	if _, ok := r.values[k]; ok {
		return nil
	}
	fv.ID = k
	r.values[k] = fv
	return nil
}

func (r *fakeFixValueRepo) Update(ctx context.Context, category machine.Category, month string, fixSalCount decimal.Decimal) (fixvalue.FixValue, error) {
	k := key(category, month)
	fv, ok := r.values[k]
	if !ok {
		return fixvalue.FixValue{}, fixvalue.ErrFixValueNotFound
	}
	fv.FixSalCount = fixSalCount
	r.values[k] = fv
	return fv, nil
}

func (r *fakeFixValueRepo) Delete(ctx context.Context, category machine.Category, month string) error {
	k := key(category, month)
	if _, ok := r.values[k]; !ok {
		return fixvalue.ErrFixValueNotFound
	}
	delete(r.values, k)
	return nil
}

func TestGet_CarriesForwardFromPreviousMonth(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFixValueRepo()
	_, err := repo.Create(ctx, fixvalue.FixValue{
		Category:    machine.CategoryTop,
		Month:       "2025-02",
		FixSalCount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	svc := NewFixValueService(repo)

	resp, err := svc.Get(ctx, machine.CategoryTop, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", resp.Month)
	assert.True(t, resp.FixSalCount.Equal(decimal.NewFromInt(400)))

	persisted, err := repo.GetByCategoryMonth(ctx, machine.CategoryTop, "2025-03")
	require.NoError(t, err)
	assert.True(t, persisted.FixSalCount.Equal(decimal.NewFromInt(400)))
}

func TestGet_CategoriesCarrySeparately(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFixValueRepo()
	_, err := repo.Create(ctx, fixvalue.FixValue{
		Category:    machine.CategoryTop,
		Month:       "2025-02",
		FixSalCount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	svc := NewFixValueService(repo)

	resp, err := svc.Get(ctx, machine.CategoryDuppata, "2025-03")
	require.NoError(t, err)
	assert.True(t, resp.FixSalCount.IsZero())

	// The Duppata miss must not persist anything.
	_, err = repo.GetByCategoryMonth(ctx, machine.CategoryDuppata, "2025-03")
	assert.ErrorIs(t, err, fixvalue.ErrFixValueNotFound)
}

func TestGet_ZeroValueNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFixValueRepo()
	svc := NewFixValueService(repo)

	resp, err := svc.Get(ctx, machine.CategoryTop, "2025-03")
	require.NoError(t, err)
	assert.Empty(t, resp.ID)
	assert.True(t, resp.FixSalCount.IsZero())
	assert.Empty(t, repo.values)
}

func TestGet_RejectsUnknownCategory(t *testing.T) {
	svc := NewFixValueService(newFakeFixValueRepo())

	_, err := svc.Get(context.Background(), machine.Category("Saree"), "2025-03")
	assert.ErrorIs(t, err, machine.ErrUnsupportedCategory)
}

func TestUpdate_OverwritesExistingMonth(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFixValueRepo()
	_, err := repo.Create(ctx, fixvalue.FixValue{
		Category:    machine.CategoryTop,
		Month:       "2025-03",
		FixSalCount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	svc := NewFixValueService(repo)

	resp, err := svc.Update(ctx, fixvalue.UpdateFixValueRequest{
		Category:    "Top",
		Month:       "2025-03",
		FixSalCount: decimal.NewFromInt(450),
	})
	require.NoError(t, err)
	assert.True(t, resp.FixSalCount.Equal(decimal.NewFromInt(450)))
}
