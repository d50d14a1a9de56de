package brand

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/factrack/factrack-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type BrandServiceImpl struct {
	db          *database.DB
	brandRepo   brand.ThreadBrandRepository
	challanRepo challan.ThreadChallanRepository
}

func NewBrandService(db *database.DB, brandRepo brand.ThreadBrandRepository, challanRepo challan.ThreadChallanRepository) brand.BrandService {
	return &BrandServiceImpl{
		db:          db,
		brandRepo:   brandRepo,
		challanRepo: challanRepo,
	}
}

// resolveParent loads the requested parent and enforces the two-level
// hierarchy: a parent must itself be parentless.
func (s *BrandServiceImpl) resolveParent(ctx context.Context, parentID string) (brand.ThreadBrand, error) {
	parent, err := s.brandRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, brand.ErrBrandNotFound) {
			return brand.ThreadBrand{}, brand.ErrParentBrandNotFound
		}
		return brand.ThreadBrand{}, err
	}
	if parent.ParentBrandID != nil {
		return brand.ThreadBrand{}, brand.ErrParentBrandNested
	}
	return parent, nil
}

func (s *BrandServiceImpl) Create(ctx context.Context, req brand.CreateBrandRequest) (brand.BrandResponse, error) {
	if err := req.Validate(); err != nil {
		return brand.BrandResponse{}, err
	}

	if req.ParentBrandID != nil {
		if _, err := s.resolveParent(ctx, *req.ParentBrandID); err != nil {
			return brand.BrandResponse{}, err
		}
	}

	created, err := s.brandRepo.Create(ctx, brand.ThreadBrand{
		CompanyName:   req.CompanyName,
		OneBoxPrice:   req.OneBoxPrice,
		ParentBrandID: req.ParentBrandID,
	})
	if err != nil {
		return brand.BrandResponse{}, err
	}

	return brand.NewBrandResponse(created), nil
}

// sortHierarchy orders brands for display: main brands alphabetically, each
// immediately followed by its sub-brands alphabetically, then any brand
// whose parent did not resolve.
func sortHierarchy(details []brand.ThreadBrandDetail) []brand.ThreadBrandDetail {
	byName := func(list []brand.ThreadBrandDetail) {
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].CompanyName) < strings.ToLower(list[j].CompanyName)
		})
	}

	parents := make([]brand.ThreadBrandDetail, 0, len(details))
	children := make(map[string][]brand.ThreadBrandDetail)
	parentIDs := make(map[string]bool)
	for _, d := range details {
		if d.ParentBrandID == nil {
			parents = append(parents, d)
			parentIDs[d.ID] = true
		}
	}
	var orphans []brand.ThreadBrandDetail
	for _, d := range details {
		if d.ParentBrandID == nil {
			continue
		}
		if parentIDs[*d.ParentBrandID] {
			children[*d.ParentBrandID] = append(children[*d.ParentBrandID], d)
		} else {
			orphans = append(orphans, d)
		}
	}

	byName(parents)
	byName(orphans)

	ordered := make([]brand.ThreadBrandDetail, 0, len(details))
	for _, p := range parents {
		ordered = append(ordered, p)
		kids := children[p.ID]
		byName(kids)
		ordered = append(ordered, kids...)
	}
	ordered = append(ordered, orphans...)

	return ordered
}

func (s *BrandServiceImpl) List(ctx context.Context) ([]brand.BrandResponse, error) {
	details, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ordered := sortHierarchy(details)
	responses := make([]brand.BrandResponse, 0, len(ordered))
	for _, d := range ordered {
		responses = append(responses, brand.NewBrandDetailResponse(d))
	}

	return responses, nil
}

func (s *BrandServiceImpl) Update(ctx context.Context, req brand.UpdateBrandRequest) (brand.BrandResponse, error) {
	if err := req.Validate(); err != nil {
		return brand.BrandResponse{}, err
	}

	tb, err := s.brandRepo.GetByID(ctx, req.ID)
	if err != nil {
		return brand.BrandResponse{}, err
	}

	if req.CompanyName != nil {
		tb.CompanyName = *req.CompanyName
	}
	if req.OneBoxPrice != nil {
		tb.OneBoxPrice = *req.OneBoxPrice
	}
	switch {
	case req.ClearParent:
		tb.ParentBrandID = nil
	case req.ParentBrandID != nil:
		childCount, err := s.brandRepo.CountChildren(ctx, tb.ID)
		if err != nil {
			return brand.BrandResponse{}, err
		}
		if childCount > 0 {
			return brand.BrandResponse{}, brand.ErrBrandHasChildren
		}
		if _, err := s.resolveParent(ctx, *req.ParentBrandID); err != nil {
			return brand.BrandResponse{}, err
		}
		tb.ParentBrandID = req.ParentBrandID
	}

	updated, err := s.brandRepo.Update(ctx, tb)
	if err != nil {
		return brand.BrandResponse{}, err
	}

	return brand.NewBrandResponse(updated), nil
}

// Delete runs the referential guard and the delete in one transaction so a
// challan created between the count and the delete cannot orphan a brand.
func (s *BrandServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.deleteGuarded(txCtx, id)
	})
}

func (s *BrandServiceImpl) deleteGuarded(ctx context.Context, id string) error {
	childCount, err := s.brandRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	challanCount, err := s.challanRepo.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if childCount > 0 || challanCount > 0 {
		return brand.ErrBrandInUse
	}

	return s.brandRepo.Delete(ctx, id)
}
