package brand

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
	nextID int
}

func newFakeBrandRepo(brands ...brand.ThreadBrand) *fakeBrandRepo {
	repo := &fakeBrandRepo{brands: make(map[string]brand.ThreadBrand)}
	for _, b := range brands {
		repo.brands[b.ID] = b
	}
	return repo
}

func (r *fakeBrandRepo) Create(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	for _, existing := range r.brands {
		if existing.CompanyName == tb.CompanyName {
			return brand.ThreadBrand{}, brand.ErrBrandNameExists
		}
	}
	r.nextID++
	tb.ID = fmt.Sprintf("b%d", r.nextID)
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
		detail := brand.ThreadBrandDetail{ThreadBrand: tb}
		if tb.ParentBrandID != nil {
			if parent, ok := r.brands[*tb.ParentBrandID]; ok {
				name := parent.CompanyName
				detail.ParentBrandName = &name
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func (r *fakeBrandRepo) Update(ctx context.Context, tb brand.ThreadBrand) (brand.ThreadBrand, error) {
	if _, ok := r.brands[tb.ID]; !ok {
		return brand.ThreadBrand{}, brand.ErrBrandNotFound
	}
	r.brands[tb.ID] = tb
	return tb, nil
}

func (r *fakeBrandRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.brands[id]; !ok {
		return brand.ErrBrandNotFound
	}
	delete(r.brands, id)
	return nil
}

func (r *fakeBrandRepo) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	for _, tb := range r.brands {
		if tb.ParentBrandID != nil && *tb.ParentBrandID == id {
			count++
		}
	}
	return count, nil
}

type fakeChallanRepo struct {
	countByBrand map[string]int64
}

func (r *fakeChallanRepo) Create(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	return tc, nil
}

func (r *fakeChallanRepo) GetByID(ctx context.Context, id string) (challan.ThreadChallan, error) {
	return challan.ThreadChallan{}, challan.ErrChallanNotFound
}

func (r *fakeChallanRepo) List(ctx context.Context, filter challan.ListFilter) ([]challan.ThreadChallan, error) {
	return nil, nil
}

func (r *fakeChallanRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]challan.ThreadChallan, error) {
	return nil, nil
}

func (r *fakeChallanRepo) Update(ctx context.Context, tc challan.ThreadChallan) (challan.ThreadChallan, error) {
	return tc, nil
}

func (r *fakeChallanRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *fakeChallanRepo) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	return r.countByBrand[brandID], nil
}

func strPtr(s string) *string { return &s }

func TestList_OrdersParentsThenChildrenThenOrphans(t *testing.T) {
	repo := newFakeBrandRepo(
		brand.ThreadBrand{ID: "p-b", CompanyName: "Bravo"},
		brand.ThreadBrand{ID: "p-a", CompanyName: "alpha"},
		brand.ThreadBrand{ID: "c-a2", CompanyName: "alpha two", ParentBrandID: strPtr("p-a")},
		brand.ThreadBrand{ID: "c-a1", CompanyName: "Alpha one", ParentBrandID: strPtr("p-a")},
		brand.ThreadBrand{ID: "orphan", CompanyName: "Zeta", ParentBrandID: strPtr("gone")},
	)
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	brands, err := svc.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.CompanyName)
	}
	assert.Equal(t, []string{"alpha", "Alpha one", "alpha two", "Bravo", "Zeta"}, names)
}

func TestCreate_RejectsNestedParent(t *testing.T) {
	repo := newFakeBrandRepo(
		brand.ThreadBrand{ID: "main", CompanyName: "Main"},
		brand.ThreadBrand{ID: "sub", CompanyName: "Sub", ParentBrandID: strPtr("main")},
	)
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	_, err := svc.Create(context.Background(), brand.CreateBrandRequest{
		CompanyName:   "Grandchild",
		OneBoxPrice:   decimal.NewFromInt(10),
		ParentBrandID: strPtr("sub"),
	})
	assert.ErrorIs(t, err, brand.ErrParentBrandNested)
}

func TestCreate_RejectsMissingParent(t *testing.T) {
	svc := &BrandServiceImpl{brandRepo: newFakeBrandRepo(), challanRepo: &fakeChallanRepo{}}

	_, err := svc.Create(context.Background(), brand.CreateBrandRequest{
		CompanyName:   "Child",
		OneBoxPrice:   decimal.NewFromInt(10),
		ParentBrandID: strPtr("missing"),
	})
	assert.ErrorIs(t, err, brand.ErrParentBrandNotFound)
}

func TestUpdate_BrandWithChildrenCannotGainParent(t *testing.T) {
	repo := newFakeBrandRepo(
		brand.ThreadBrand{ID: "main", CompanyName: "Main"},
		brand.ThreadBrand{ID: "sub", CompanyName: "Sub", ParentBrandID: strPtr("main")},
		brand.ThreadBrand{ID: "other", CompanyName: "Other"},
	)
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	_, err := svc.Update(context.Background(), brand.UpdateBrandRequest{
		ID:            "main",
		ParentBrandID: strPtr("other"),
	})
	assert.ErrorIs(t, err, brand.ErrBrandHasChildren)
}

func TestUpdate_ClearParentDetaches(t *testing.T) {
	repo := newFakeBrandRepo(
		brand.ThreadBrand{ID: "main", CompanyName: "Main"},
		brand.ThreadBrand{ID: "sub", CompanyName: "Sub", ParentBrandID: strPtr("main")},
	)
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	resp, err := svc.Update(context.Background(), brand.UpdateBrandRequest{
		ID:          "sub",
		ClearParent: true,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ParentBrandID)
}

func TestDelete_BlockedByChildren(t *testing.T) {
	repo := newFakeBrandRepo(
		brand.ThreadBrand{ID: "main", CompanyName: "Main"},
		brand.ThreadBrand{ID: "sub", CompanyName: "Sub", ParentBrandID: strPtr("main")},
	)
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	err := svc.deleteGuarded(context.Background(), "main")
	assert.ErrorIs(t, err, brand.ErrBrandInUse)
}

func TestDelete_BlockedByChallans(t *testing.T) {
	repo := newFakeBrandRepo(brand.ThreadBrand{ID: "main", CompanyName: "Main"})
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{countByBrand: map[string]int64{"main": 2}}}

	err := svc.deleteGuarded(context.Background(), "main")
	assert.ErrorIs(t, err, brand.ErrBrandInUse)
}

func TestDelete_UnreferencedBrand(t *testing.T) {
	repo := newFakeBrandRepo(brand.ThreadBrand{ID: "main", CompanyName: "Main"})
	svc := &BrandServiceImpl{brandRepo: repo, challanRepo: &fakeChallanRepo{}}

	require.NoError(t, svc.deleteGuarded(context.Background(), "main"))

	_, err := repo.GetByID(context.Background(), "main")
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}
