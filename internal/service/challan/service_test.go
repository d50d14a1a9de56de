package challan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBrandRepo struct {
	brands map[string]brand.ThreadBrand
}

func newFakeBrandRepo(brands ...brand.ThreadBrand) *fakeBrandRepo {
	repo := &fakeBrandRepo{brands: make(map[string]brand.ThreadBrand)}
	for _, b := range brands {
		repo.brands[b.ID] = b
	}
	return repo
}

func (r *fakeBrandRepo) Create(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	r.brands[tb.ID] = tb
	return tb, nil
}

func (r *fakeBrandRepo) GetByID(ctx context.Context, id string) (brand.ThreadBrand, error) {
	tb, ok := r.brands[id]
	if !ok {
		return brand.ThreadBrand{}, brand.ErrBrandNotFound
	}
	return tb, nil
}

func (r *fakeBrandRepo) List(ctx context.Context) ([]brand.ThreadBrandDetail, error) {
	out := make([]brand.ThreadBrandDetail, 0, len(r.brands))
	for _, tb := range r.brands {
		out = append(out, brand.ThreadBrandDetail{ThreadBrand: tb})
	}
	return out, nil
}

func (r *fakeBrandRepo) Update(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	r.brands[tb.ID] = tb
	return tb, nil
}

func (r *fakeBrandRepo) Delete(ctx context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

func (r *fakeBrandRepo) CountChildren(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeChallanRepo struct {
	challans map[string]challan.ThreadChallan
	nextID   int
}

func newFakeChallanRepo() *fakeChallanRepo {
	return &fakeChallanRepo{challans: make(map[string]challan.ThreadChallan)}
}

func challanKey(tc challan.ThreadChallan) string {
	return fmt.Sprintf("%s|%d|%s", tc.MainBrandID, tc.ChallanNo, tc.Date.Format("2006-01"))
}

func (r *fakeChallanRepo) Create(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	for _, existing := range r.challans {
		if challanKey(existing) == challanKey(tc) {
			return challan.ThreadChallan{}, challan.ErrChallanExists
		}
	}
	r.nextID++
	tc.ID = fmt.Sprintf("ch%d", r.nextID)
	r.challans[tc.ID] = tc
	return tc, nil
}

func (r *fakeChallanRepo) GetByID(ctx context.Context, id string) (challan.ThreadChallan, error) {
	tc, ok := r.challans[id]
	if !ok {
		return challan.ThreadChallan{}, challan.ErrChallanNotFound
	}
	return tc, nil
}

func (r *fakeChallanRepo) List(ctx context.Context, filter challan.ListFilter) ([]challan.ThreadChallan, error) {
	out := make([]challan.ThreadChallan, 0, len(r.challans))
	for _, tc := range r.challans {
		out = append(out, tc)
	}
	return out, nil
}

func (r *fakeChallanRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]challan.ThreadChallan, error) {
	out := make([]challan.ThreadChallan, 0, len(r.challans))
	for _, tc := range r.challans {
		if !tc.Date.Before(from) && tc.Date.Before(to) {
			out = append(out, tc)
		}
	}
	return out, nil
}

func (r *fakeChallanRepo) Update(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	if _, ok := r.challans[tc.ID]; !ok {
		return challan.ThreadChallan{}, challan.ErrChallanNotFound
	}
	r.challans[tc.ID] = tc
	return tc, nil
}

func (r *fakeChallanRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.challans[id]; !ok {
		return challan.ErrChallanNotFound
	}
	delete(r.challans, id)
	return nil
}

func (r *fakeChallanRepo) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	return 0, nil
}

func strPtr(s string) *string { return &s }

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Acme is a main brand with sub-brand Acme Gold; Solo stands alone.
func testBrands() *fakeBrandRepo {
	return newFakeBrandRepo(
		brand.ThreadBrand{ID: "acme", CompanyName: "Acme", OneBoxPrice: price(100)},
		brand.ThreadBrand{ID: "acme-gold", CompanyName: "Acme Gold", OneBoxPrice: price(150), ParentBrandID: strPtr("acme")},
		brand.ThreadBrand{ID: "solo", CompanyName: "Solo", OneBoxPrice: price(80)},
	)
}

func TestCreate_MainBrandFollowsFirstEntryParent(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo(), testBrands())

	resp, err := svc.Create(context.Background(), challan.CreateChallanRequest{
		ChallanNo: 7,
		Date:      "2025-03-10",
		Entries: []challan.ChallanEntryRequest{
			{Company: "acme-gold", BoxCount: 2},
			{Company: "solo", BoxCount: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "acme", resp.MainBrand)
	assert.Equal(t, "Acme", resp.MainBrandName)
	assert.Equal(t, 3.0, resp.TotalBoxes)
	// 2*150 + 1*80
	assert.True(t, resp.TotalPrice.Equal(price(380)), "got %s", resp.TotalPrice)
}

func TestCreate_ParentlessFirstEntryIsItsOwnMainBrand(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo(), testBrands())

	resp, err := svc.Create(context.Background(), challan.CreateChallanRequest{
		ChallanNo: 8,
		Date:      "2025-03-11",
		Entries:   []challan.ChallanEntryRequest{{Company: "solo", BoxCount: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, "solo", resp.MainBrand)
}

func TestCreate_UnknownEntryCompany(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo(), testBrands())

	_, err := svc.Create(context.Background(), challan.CreateChallanRequest{
		ChallanNo: 9,
		Date:      "2025-03-12",
		Entries:   []challan.ChallanEntryRequest{{Company: "ghost", BoxCount: 1}},
	})
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}

func TestCreate_DuplicateChallanNoInMonthConflicts(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo(), testBrands())

	req := challan.CreateChallanRequest{
		ChallanNo: 7,
		Date:      "2025-03-10",
		Entries:   []challan.ChallanEntryRequest{{Company: "acme-gold", BoxCount: 2}},
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	// Same main brand, challan number and month, different day.
	req.Date = "2025-03-22"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, challan.ErrChallanExists)

	// Next month reuses the number freely.
	req.Date = "2025-04-10"
	_, err = svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdate_EntriesChangeRederivesMainBrand(t *testing.T) {
	repo := newFakeChallanRepo()
	svc := NewChallanService(repo, testBrands())

	created, err := svc.Create(context.Background(), challan.CreateChallanRequest{
		ChallanNo: 7,
		Date:      "2025-03-10",
		Entries:   []challan.ChallanEntryRequest{{Company: "acme-gold", BoxCount: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, "acme", created.MainBrand)

	updated, err := svc.Update(context.Background(), challan.UpdateChallanRequest{
		ID:      created.ID,
		Entries: []challan.ChallanEntryRequest{{Company: "solo", BoxCount: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "solo", updated.MainBrand)
}

func TestMonthThreadCount_GroupsUnderMainBrand(t *testing.T) {
	repo := newFakeChallanRepo()
	svc := NewChallanService(repo, testBrands())

	mustCreate := func(no int, date string, entries ...challan.ChallanEntryRequest) {
		_, err := svc.Create(context.Background(), challan.CreateChallanRequest{
			ChallanNo: no,
			Date:      date,
			Entries:   entries,
		})
		require.NoError(t, err)
	}
	mustCreate(1, "2025-03-05",
		challan.ChallanEntryRequest{Company: "acme-gold", BoxCount: 2},
		challan.ChallanEntryRequest{Company: "acme", BoxCount: 1},
	)
	mustCreate(2, "2025-03-20", challan.ChallanEntryRequest{Company: "acme-gold", BoxCount: 3})
	mustCreate(3, "2025-03-25", challan.ChallanEntryRequest{Company: "solo", BoxCount: 4})
	// Outside the month, must not count.
	mustCreate(4, "2025-04-01", challan.ChallanEntryRequest{Company: "solo", BoxCount: 99})

	resp, err := svc.MonthThreadCount(context.Background(), "2025-03")
	require.NoError(t, err)

	require.Len(t, resp.MainBrands, 2)
	acme := resp.MainBrands[0]
	solo := resp.MainBrands[1]

	assert.Equal(t, "Acme", acme.MainBrandName)
	// Only the sub-brand's boxes count toward the main brand's totals;
	// Acme's own box surfaces the name but adds nothing.
	assert.Equal(t, 5.0, acme.TotalBoxes)
	assert.True(t, acme.TotalPrice.Equal(price(750)), "got %s", acme.TotalPrice)
	require.Len(t, acme.SubBrands, 1)
	assert.Equal(t, "Acme Gold", acme.SubBrands[0].BrandName)
	assert.Equal(t, 5.0, acme.SubBrands[0].Boxes)
	assert.True(t, acme.SubBrands[0].TotalPrice.Equal(price(750)))

	assert.Equal(t, "Solo", solo.MainBrandName)
	assert.Equal(t, 0.0, solo.TotalBoxes)
	assert.True(t, solo.TotalPrice.IsZero())
	assert.Empty(t, solo.SubBrands)

	assert.Equal(t, 5.0, resp.OverallTotalBoxes)
	assert.True(t, resp.OverallTotalPrice.Equal(price(750)), "got %s", resp.OverallTotalPrice)
}

func TestMonthThreadCount_RejectsBadMonth(t *testing.T) {
	svc := NewChallanService(newFakeChallanRepo(), testBrands())

	_, err := svc.MonthThreadCount(context.Background(), "03-2025")
	assert.Error(t, err)
}
