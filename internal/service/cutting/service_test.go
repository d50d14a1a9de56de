package cutting

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/cutting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeThreadPriceRepo struct {
	prices map[string]cutting.ThreadPrice
}

func newFakeThreadPriceRepo(prices ...cutting.ThreadPrice) *fakeThreadPriceRepo {
	repo := &fakeThreadPriceRepo{prices: make(map[string]cutting.ThreadPrice)}
	for _, tp := range prices {
		repo.prices[tp.ID] = tp
	}
	return repo
}

func (r *fakeThreadPriceRepo) Create(ctx context.Context, tp cutting.ThreadPrice) (cutting.ThreadPrice, error) {
	r.prices[tp.ID] = tp
	return tp, nil
}

func (r *fakeThreadPriceRepo) GetByID(ctx context.Context, id string) (cutting.ThreadPrice, error) {
	tp, ok := r.prices[id]
	if !ok {
		return cutting.ThreadPrice{}, cutting.ErrThreadPriceNotFound
	}
	return tp, nil
}

func (r *fakeThreadPriceRepo) List(ctx context.Context) ([]cutting.ThreadPrice, error) {
	out := make([]cutting.ThreadPrice, 0, len(r.prices))
	for _, tp := range r.prices {
		out = append(out, tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	return out, nil
}

func (r *fakeThreadPriceRepo) Update(ctx context.Context, tp cutting.ThreadPrice) (cutting.ThreadPrice, error) {
	r.prices[tp.ID] = tp
	return tp, nil
}

func (r *fakeThreadPriceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.prices[id]; !ok {
		return cutting.ErrThreadPriceNotFound
	}
	delete(r.prices, id)
	return nil
}

type fakeCuttingUserRepo struct {
	users map[string]cutting.CuttingUser
}

func newFakeCuttingUserRepo(users ...cutting.CuttingUser) *fakeCuttingUserRepo {
	repo := &fakeCuttingUserRepo{users: make(map[string]cutting.CuttingUser)}
	for _, cu := range users {
		repo.users[cu.ID] = cu
	}
	return repo
}

func (r *fakeCuttingUserRepo) Create(ctx context.Context, cu cutting.CuttingUser) (cutting.CuttingUser, error) {
	r.users[cu.ID] = cu
	return cu, nil
}

func (r *fakeCuttingUserRepo) GetByID(ctx context.Context, id string) (cutting.CuttingUser, error) {
	cu, ok := r.users[id]
	if !ok {
		return cutting.CuttingUser{}, cutting.ErrCuttingUserNotFound
	}
	return cu, nil
}

func (r *fakeCuttingUserRepo) List(ctx context.Context) ([]cutting.CuttingUser, error) {
	out := make([]cutting.CuttingUser, 0, len(r.users))
	for _, cu := range r.users {
		out = append(out, cu)
	}
	return out, nil
}

func (r *fakeCuttingUserRepo) Update(ctx context.Context, cu cutting.CuttingUser) (cutting.CuttingUser, error) {
	r.users[cu.ID] = cu
	return cu, nil
}

func (r *fakeCuttingUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return cutting.ErrCuttingUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeCuttingDataRepo struct {
	lists  map[string]cutting.CuttingData
	nextID int
}

func newFakeCuttingDataRepo() *fakeCuttingDataRepo {
	return &fakeCuttingDataRepo{lists: make(map[string]cutting.CuttingData)}
}

func (r *fakeCuttingDataRepo) Create(ctx context.Context, cd cutting.CuttingData) (cutting.CuttingData, error) {
	r.nextID++
	cd.ID = fmt.Sprintf("cd%d", r.nextID)
	r.lists[cd.ID] = cd
	return cd, nil
}

func (r *fakeCuttingDataRepo) GetByID(ctx context.Context, id string) (cutting.CuttingData, error) {
	cd, ok := r.lists[id]
	if !ok {
		return cutting.CuttingData{}, cutting.ErrCuttingDataNotFound
	}
	return cd, nil
}

func (r *fakeCuttingDataRepo) List(ctx context.Context, from, to time.Time) ([]cutting.CuttingData, error) {
	out := make([]cutting.CuttingData, 0, len(r.lists))
	for _, cd := range r.lists {
		if !from.IsZero() || !to.IsZero() {
			if cd.Date.Before(from) || !cd.Date.Before(to) {
				continue
			}
		}
		out = append(out, cd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeCuttingDataRepo) Update(ctx context.Context, cd cutting.CuttingData) (cutting.CuttingData, error) {
	if _, ok := r.lists[cd.ID]; !ok {
		return cutting.CuttingData{}, cutting.ErrCuttingDataNotFound
	}
	r.lists[cd.ID] = cd
	return cd, nil
}

func (r *fakeCuttingDataRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.lists[id]; !ok {
		return cutting.ErrCuttingDataNotFound
	}
	delete(r.lists, id)
	return nil
}

func (r *fakeCuttingDataRepo) CountByThreadPrice(ctx context.Context, threadPriceID string) (int64, error) {
	var count int64
	for _, cd := range r.lists {
		for _, e := range cd.Entries {
			if e.ThreadPriceID == threadPriceID {
				count++
			}
		}
	}
	return count, nil
}

func (r *fakeCuttingDataRepo) CountByUser(ctx context.Context, cuttingUserID string) (int64, error) {
	var count int64
	for _, cd := range r.lists {
		if cd.CuttingUserID == cuttingUserID {
			count++
		}
	}
	return count, nil
}

func testCuttingService() (cutting.CuttingService, *fakeCuttingDataRepo) {
	priceRepo := newFakeThreadPriceRepo(
		cutting.ThreadPrice{ID: "fine", Name: "Fine", Price: decimal.NewFromFloat(2.5)},
		cutting.ThreadPrice{ID: "coarse", Name: "Coarse", Price: decimal.NewFromInt(4)},
	)
	userRepo := newFakeCuttingUserRepo(
		cutting.CuttingUser{ID: "cu1", Name: "Beena"},
		cutting.CuttingUser{ID: "cu2", Name: "anita"},
	)
	dataRepo := newFakeCuttingDataRepo()
	return NewCuttingService(priceRepo, userRepo, dataRepo), dataRepo
}

func TestCreateCuttingData_EntriesSortedByPrice(t *testing.T) {
	svc, _ := testCuttingService()

	resp, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
		CuttingUser: "cu1",
		Date:        "2025-03-10",
		Entries: []cutting.CuttingEntryRequest{
			{ThreadPrice: "coarse", Quantity: 10},
			{ThreadPrice: "fine", Quantity: 20},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Fine", resp.Entries[0].ThreadPriceName)
	assert.Equal(t, "Coarse", resp.Entries[1].ThreadPriceName)
	// 20*2.5 + 10*4
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(90)), "got %s", resp.Total)
	assert.Equal(t, "Beena", resp.CuttingUserName)
}

func TestCreateCuttingData_UnknownThreadPrice(t *testing.T) {
	svc, _ := testCuttingService()

	_, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
		CuttingUser: "cu1",
		Date:        "2025-03-10",
		Entries:     []cutting.CuttingEntryRequest{{ThreadPrice: "ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, cutting.ErrThreadPriceNotFound)
}

func TestListCuttingData_GroupsByDateWithSubtotals(t *testing.T) {
	svc, _ := testCuttingService()

	create := func(user, date string, entries ...cutting.CuttingEntryRequest) {
		_, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
			CuttingUser: user,
			Date:        date,
			Entries:     entries,
		})
		require.NoError(t, err)
	}
	create("cu1", "2025-03-10", cutting.CuttingEntryRequest{ThreadPrice: "fine", Quantity: 10})
	create("cu2", "2025-03-10", cutting.CuttingEntryRequest{ThreadPrice: "coarse", Quantity: 5})
	create("cu1", "2025-03-12", cutting.CuttingEntryRequest{ThreadPrice: "coarse", Quantity: 2})

	groups, err := svc.ListCuttingData(context.Background(), "2025-03")
	require.NoError(t, err)

	require.Len(t, groups, 2)
	// Newest date first.
	assert.Equal(t, "2025-03-12", groups[0].Date)
	assert.Equal(t, "2025-03-10", groups[1].Date)
	assert.Len(t, groups[1].Lists, 2)
	// 10*2.5 + 5*4 = 45
	assert.True(t, groups[1].Subtotal.Equal(decimal.NewFromInt(45)), "got %s", groups[1].Subtotal)
}

func TestMonthCuttingCount_TotalsPerUserSortedByName(t *testing.T) {
	svc, _ := testCuttingService()

	create := func(user, date string, entries ...cutting.CuttingEntryRequest) {
		_, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
			CuttingUser: user,
			Date:        date,
			Entries:     entries,
		})
		require.NoError(t, err)
	}
	create("cu1", "2025-03-10", cutting.CuttingEntryRequest{ThreadPrice: "fine", Quantity: 10})
	create("cu1", "2025-03-11", cutting.CuttingEntryRequest{ThreadPrice: "coarse", Quantity: 5})
	create("cu2", "2025-03-12", cutting.CuttingEntryRequest{ThreadPrice: "fine", Quantity: 4})
	// Outside the month.
	create("cu2", "2025-04-01", cutting.CuttingEntryRequest{ThreadPrice: "coarse", Quantity: 50})

	resp, err := svc.MonthCuttingCount(context.Background(), "2025-03")
	require.NoError(t, err)

	require.Len(t, resp.Users, 2)
	// Case-insensitive name order: anita before Beena.
	assert.Equal(t, "anita", resp.Users[0].CuttingUserName)
	assert.True(t, resp.Users[0].Total.Equal(decimal.NewFromInt(10)), "got %s", resp.Users[0].Total)
	assert.Equal(t, "Beena", resp.Users[1].CuttingUserName)
	assert.True(t, resp.Users[1].Total.Equal(decimal.NewFromInt(45)), "got %s", resp.Users[1].Total)
	assert.True(t, resp.OverallTotal.Equal(decimal.NewFromInt(55)))
}

func TestDeleteThreadPrice_BlockedWhileReferenced(t *testing.T) {
	svc, _ := testCuttingService()

	_, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
		CuttingUser: "cu1",
		Date:        "2025-03-10",
		Entries:     []cutting.CuttingEntryRequest{{ThreadPrice: "fine", Quantity: 1}},
	})
	require.NoError(t, err)

	err = svc.DeleteThreadPrice(context.Background(), "fine")
	assert.ErrorIs(t, err, cutting.ErrThreadPriceInUse)
}

func TestDeleteCuttingUser_BlockedWhileReferenced(t *testing.T) {
	svc, _ := testCuttingService()

	_, err := svc.CreateCuttingData(context.Background(), cutting.CreateCuttingDataRequest{
		CuttingUser: "cu2",
		Date:        "2025-03-10",
		Entries:     []cutting.CuttingEntryRequest{{ThreadPrice: "fine", Quantity: 1}},
	})
	require.NoError(t, err)

	err = svc.DeleteCuttingUser(context.Background(), "cu2")
	assert.ErrorIs(t, err, cutting.ErrCuttingUserInUse)
}
