package challan

import (
	"context"
	"sort"
	"strings"

	"github.com/factrack/factrack-backend-go/internal/domain/brand"
	"github.com/factrack/factrack-backend-go/internal/domain/challan"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ChallanServiceImpl struct {
	challanRepo challan.ThreadChallanRepository
	brandRepo   brand.ThreadBrandRepository
}

func NewChallanService(challanRepo challan.ThreadChallanRepository, brandRepo brand.ThreadBrandRepository) challan.ChallanService {
	return &ChallanServiceImpl{
		challanRepo: challanRepo,
		brandRepo:   brandRepo,
	}
}

// mainBrandOf resolves the challan's main brand from its first entry: the
// entry company's parent brand, or the company itself when it has none.
func (s *ChallanServiceImpl) mainBrandOf(ctx context.Context, entries []challan.ChallanEntry) (string, error) {
	first, err := s.brandRepo.GetByID(ctx, entries[0].CompanyID)
	if err != nil {
		return "", err
	}
	if first.ParentBrandID != nil {
		return *first.ParentBrandID, nil
	}
	return first.ID, nil
}

func (s *ChallanServiceImpl) resolveEntries(ctx context.Context, reqs []challan.ChallanEntryRequest) ([]challan.ChallanEntry, error) {
	entries := make([]challan.ChallanEntry, 0, len(reqs))
	for _, e := range reqs {
		if _, err := s.brandRepo.GetByID(ctx, e.Company); err != nil {
			return nil, err
		}
		entries = append(entries, challan.ChallanEntry{CompanyID: e.Company, BoxCount: e.BoxCount})
	}
	return entries, nil
}

func (s *ChallanServiceImpl) Create(ctx context.Context, req challan.CreateChallanRequest) (challan.ChallanResponse, error) {
	if err := req.Validate(); err != nil {
		return challan.ChallanResponse{}, err
	}

	entries, err := s.resolveEntries(ctx, req.Entries)
	if err != nil {
		return challan.ChallanResponse{}, err
	}
	mainBrandID, err := s.mainBrandOf(ctx, entries)
	if err != nil {
		return challan.ChallanResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.challanRepo.Create(ctx, challan.ThreadChallan{
		ChallanNo:   req.ChallanNo,
		Date:        date,
		MainBrandID: mainBrandID,
		Entries:     entries,
	})
	if err != nil {
		return challan.ChallanResponse{}, err
	}

	return s.toResponse(ctx, created)
}

func (s *ChallanServiceImpl) brandIndex(ctx context.Context) (map[string]brand.ThreadBrandDetail, error) {
	details, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]brand.ThreadBrandDetail, len(details))
	for _, d := range details {
		index[d.ID] = d
	}
	return index, nil
}

func buildResponse(tc challan.ThreadChallan, brands map[string]brand.ThreadBrandDetail) challan.ChallanResponse {
	resp := challan.ChallanResponse{
		ID:            tc.ID,
		ChallanNo:     tc.ChallanNo,
		Date:          tc.Date.Format("2006-01-02"),
		MainBrand:     tc.MainBrandID,
		MainBrandName: brands[tc.MainBrandID].CompanyName,
		Entries:       make([]challan.ChallanEntryResponse, 0, len(tc.Entries)),
		TotalPrice:    decimal.Zero,
	}
	for _, e := range tc.Entries {
		b := brands[e.CompanyID]
		total := b.OneBoxPrice.Mul(decimal.NewFromFloat(e.BoxCount))
		resp.Entries = append(resp.Entries, challan.ChallanEntryResponse{
			Company:     e.CompanyID,
			CompanyName: b.CompanyName,
			BoxCount:    e.BoxCount,
			OneBoxPrice: b.OneBoxPrice,
			TotalPrice:  total.Round(2),
		})
		resp.TotalBoxes += e.BoxCount
		resp.TotalPrice = resp.TotalPrice.Add(total)
	}
	resp.TotalPrice = resp.TotalPrice.Round(2)
	return resp
}

func (s *ChallanServiceImpl) toResponse(ctx context.Context, tc challan.ThreadChallan) (challan.ChallanResponse, error) {
	brands, err := s.brandIndex(ctx)
	if err != nil {
		return challan.ChallanResponse{}, err
	}
	return buildResponse(tc, brands), nil
}

func (s *ChallanServiceImpl) GetByID(ctx context.Context, id string) (challan.ChallanResponse, error) {
	tc, err := s.challanRepo.GetByID(ctx, id)
	if err != nil {
		return challan.ChallanResponse{}, err
	}
	return s.toResponse(ctx, tc)
}

func (s *ChallanServiceImpl) List(ctx context.Context, filter challan.ListFilter) ([]challan.ChallanResponse, error) {
	if !validator.IsValidMonth(filter.Month) {
		return nil, validator.ValidationErrors{{Field: "monthYear", Message: "must be in YYYY-MM format"}}
	}

	challans, err := s.challanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	brands, err := s.brandIndex(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]challan.ChallanResponse, 0, len(challans))
	for _, tc := range challans {
		responses = append(responses, buildResponse(tc, brands))
	}

	return responses, nil
}

func (s *ChallanServiceImpl) Update(ctx context.Context, req challan.UpdateChallanRequest) (challan.ChallanResponse, error) {
	if err := req.Validate(); err != nil {
		return challan.ChallanResponse{}, err
	}

	tc, err := s.challanRepo.GetByID(ctx, req.ID)
	if err != nil {
		return challan.ChallanResponse{}, err
	}

	if req.ChallanNo != nil {
		tc.ChallanNo = *req.ChallanNo
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		tc.Date = date
	}
	if req.Entries != nil {
		entries, err := s.resolveEntries(ctx, req.Entries)
		if err != nil {
			return challan.ChallanResponse{}, err
		}
		tc.Entries = entries
		// The main brand follows the first entry.
		if tc.MainBrandID, err = s.mainBrandOf(ctx, entries); err != nil {
			return challan.ChallanResponse{}, err
		}
	}

	updated, err := s.challanRepo.Update(ctx, tc)
	if err != nil {
		return challan.ChallanResponse{}, err
	}

	return s.toResponse(ctx, updated)
}

func (s *ChallanServiceImpl) Delete(ctx context.Context, id string) error {
	return s.challanRepo.Delete(ctx, id)
}

func (s *ChallanServiceImpl) MonthThreadCount(ctx context.Context, month string) (challan.MonthThreadCountResponse, error) {
	if !validator.IsValidMonth(month) {
		return challan.MonthThreadCountResponse{}, validator.ValidationErrors{{Field: "monthYear", Message: "must be in YYYY-MM format"}}
	}

	from, to, err := validator.MonthBounds(month)
	if err != nil {
		return challan.MonthThreadCountResponse{}, err
	}
	challans, err := s.challanRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return challan.MonthThreadCountResponse{}, err
	}
	brands, err := s.brandIndex(ctx)
	if err != nil {
		return challan.MonthThreadCountResponse{}, err
	}

	// Unwind every entry of the month and total boxes per company.
	boxesByCompany := make(map[string]float64)
	for _, tc := range challans {
		for _, e := range tc.Entries {
			boxesByCompany[e.CompanyID] += e.BoxCount
		}
	}

	type mainAgg struct {
		name       string
		subBrands  []challan.SubBrandCount
		totalBoxes float64
		totalPrice decimal.Decimal
	}
	mains := make(map[string]*mainAgg)

	mainFor := func(b brand.ThreadBrandDetail) *mainAgg {
		mainID, mainName := b.ID, b.CompanyName
		if b.ParentBrandID != nil {
			mainID = *b.ParentBrandID
			if p, ok := brands[mainID]; ok {
				mainName = p.CompanyName
			}
		}
		agg, ok := mains[mainID]
		if !ok {
			agg = &mainAgg{name: mainName, totalPrice: decimal.Zero}
			mains[mainID] = agg
		}
		return agg
	}

	companyIDs := make([]string, 0, len(boxesByCompany))
	for id := range boxesByCompany {
		companyIDs = append(companyIDs, id)
	}
	sort.Strings(companyIDs)

	for _, id := range companyIDs {
		b, ok := brands[id]
		if !ok {
			continue
		}
		boxes := boxesByCompany[id]
		agg := mainFor(b)

		// Only sub-brand entries feed a main brand's totals. A parentless
		// brand's own boxes still surface its name, with zero totals.
		if b.ParentBrandID == nil {
			continue
		}

		price := b.OneBoxPrice.Mul(decimal.NewFromFloat(boxes))
		agg.totalBoxes += boxes
		agg.totalPrice = agg.totalPrice.Add(price)
		agg.subBrands = append(agg.subBrands, challan.SubBrandCount{
			BrandName:   b.CompanyName,
			Boxes:       boxes,
			OneBoxPrice: b.OneBoxPrice,
			TotalPrice:  price.Round(2),
		})
	}

	resp := challan.MonthThreadCountResponse{
		Month:             month,
		MainBrands:        make([]challan.MainBrandCount, 0, len(mains)),
		OverallTotalPrice: decimal.Zero,
	}
	for _, agg := range mains {
		sort.Slice(agg.subBrands, func(i, j int) bool {
			return strings.ToLower(agg.subBrands[i].BrandName) < strings.ToLower(agg.subBrands[j].BrandName)
		})
		resp.MainBrands = append(resp.MainBrands, challan.MainBrandCount{
			MainBrandName: agg.name,
			SubBrands:     agg.subBrands,
			TotalBoxes:    agg.totalBoxes,
			TotalPrice:    agg.totalPrice.Round(2),
		})
		resp.OverallTotalBoxes += agg.totalBoxes
		resp.OverallTotalPrice = resp.OverallTotalPrice.Add(agg.totalPrice)
	}
	sort.Slice(resp.MainBrands, func(i, j int) bool {
		return strings.ToLower(resp.MainBrands[i].MainBrandName) < strings.ToLower(resp.MainBrands[j].MainBrandName)
	})
	resp.OverallTotalPrice = resp.OverallTotalPrice.Round(2)

	return resp, nil
}
