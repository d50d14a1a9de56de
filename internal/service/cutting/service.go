package cutting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/cutting"
	"github.com/factrack/factrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CuttingServiceImpl struct {
	threadPriceRepo cutting.ThreadPriceRepository
	cuttingUserRepo cutting.CuttingUserRepository
	cuttingDataRepo cutting.CuttingDataRepository
}

func NewCuttingService(
	threadPriceRepo cutting.ThreadPriceRepository,
	cuttingUserRepo cutting.CuttingUserRepository,
	cuttingDataRepo cutting.CuttingDataRepository,
) cutting.CuttingService {
	return &CuttingServiceImpl{
		threadPriceRepo: threadPriceRepo,
		cuttingUserRepo: cuttingUserRepo,
		cuttingDataRepo: cuttingDataRepo,
	}
}

// ========== THREAD PRICES ==========

func (s *CuttingServiceImpl) CreateThreadPrice(ctx context.Context, req cutting.CreateThreadPriceRequest) (cutting.ThreadPriceResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.ThreadPriceResponse{}, err
	}

	created, err := s.threadPriceRepo.Create(ctx, cutting.ThreadPrice{Name: req.Name, Price: req.Price})
	if err != nil {
		return cutting.ThreadPriceResponse{}, err
	}

	return cutting.NewThreadPriceResponse(created), nil
}

func (s *CuttingServiceImpl) ListThreadPrices(ctx context.Context) ([]cutting.ThreadPriceResponse, error) {
	prices, err := s.threadPriceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]cutting.ThreadPriceResponse, 0, len(prices))
	for _, tp := range prices {
		responses = append(responses, cutting.NewThreadPriceResponse(tp))
	}

	return responses, nil
}

func (s *CuttingServiceImpl) UpdateThreadPrice(ctx context.Context, req cutting.UpdateThreadPriceRequest) (cutting.ThreadPriceResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.ThreadPriceResponse{}, err
	}

	tp, err := s.threadPriceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cutting.ThreadPriceResponse{}, err
	}

	if req.Name != nil {
		tp.Name = *req.Name
	}
	if req.Price != nil {
		tp.Price = *req.Price
	}

	updated, err := s.threadPriceRepo.Update(ctx, tp)
	if err != nil {
		return cutting.ThreadPriceResponse{}, err
	}

	return cutting.NewThreadPriceResponse(updated), nil
}

func (s *CuttingServiceImpl) DeleteThreadPrice(ctx context.Context, id string) error {
	count, err := s.cuttingDataRepo.CountByThreadPrice(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return cutting.ErrThreadPriceInUse
	}

	return s.threadPriceRepo.Delete(ctx, id)
}

// ========== CUTTING USERS ==========

func (s *CuttingServiceImpl) CreateCuttingUser(ctx context.Context, req cutting.CreateCuttingUserRequest) (cutting.CuttingUserResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.CuttingUserResponse{}, err
	}

	created, err := s.cuttingUserRepo.Create(ctx, cutting.CuttingUser{Name: req.Name})
	if err != nil {
		return cutting.CuttingUserResponse{}, err
	}

	return cutting.NewCuttingUserResponse(created), nil
}

func (s *CuttingServiceImpl) ListCuttingUsers(ctx context.Context) ([]cutting.CuttingUserResponse, error) {
	users, err := s.cuttingUserRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]cutting.CuttingUserResponse, 0, len(users))
	for _, cu := range users {
		responses = append(responses, cutting.NewCuttingUserResponse(cu))
	}

	return responses, nil
}

func (s *CuttingServiceImpl) UpdateCuttingUser(ctx context.Context, req cutting.UpdateCuttingUserRequest) (cutting.CuttingUserResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.CuttingUserResponse{}, err
	}

	cu, err := s.cuttingUserRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cutting.CuttingUserResponse{}, err
	}
	cu.Name = req.Name

	updated, err := s.cuttingUserRepo.Update(ctx, cu)
	if err != nil {
		return cutting.CuttingUserResponse{}, err
	}

	return cutting.NewCuttingUserResponse(updated), nil
}

func (s *CuttingServiceImpl) DeleteCuttingUser(ctx context.Context, id string) error {
	count, err := s.cuttingDataRepo.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return cutting.ErrCuttingUserInUse
	}

	return s.cuttingUserRepo.Delete(ctx, id)
}

// ========== CUTTING DATA ==========

func (s *CuttingServiceImpl) resolveCuttingEntries(ctx context.Context, reqs []cutting.CuttingEntryRequest) ([]cutting.CuttingEntry, error) {
	entries := make([]cutting.CuttingEntry, 0, len(reqs))
	for _, e := range reqs {
		if _, err := s.threadPriceRepo.GetByID(ctx, e.ThreadPrice); err != nil {
			return nil, err
		}
		entries = append(entries, cutting.CuttingEntry{ThreadPriceID: e.ThreadPrice, Quantity: e.Quantity})
	}
	return entries, nil
}

func (s *CuttingServiceImpl) CreateCuttingData(ctx context.Context, req cutting.CreateCuttingDataRequest) (cutting.CuttingDataResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	cu, err := s.cuttingUserRepo.GetByID(ctx, req.CuttingUser)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}
	entries, err := s.resolveCuttingEntries(ctx, req.Entries)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.cuttingDataRepo.Create(ctx, cutting.CuttingData{
		CuttingUserID: req.CuttingUser,
		Date:          date,
		Entries:       entries,
	})
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	prices, err := s.priceIndex(ctx)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	return buildCuttingDataResponse(created, cu.Name, prices), nil
}

func (s *CuttingServiceImpl) priceIndex(ctx context.Context) (map[string]cutting.ThreadPrice, error) {
	prices, err := s.threadPriceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]cutting.ThreadPrice, len(prices))
	for _, tp := range prices {
		index[tp.ID] = tp
	}
	return index, nil
}

func (s *CuttingServiceImpl) userIndex(ctx context.Context) (map[string]cutting.CuttingUser, error) {
	users, err := s.cuttingUserRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]cutting.CuttingUser, len(users))
	for _, cu := range users {
		index[cu.ID] = cu
	}
	return index, nil
}

func buildCuttingDataResponse(cd cutting.CuttingData, userName string, prices map[string]cutting.ThreadPrice) cutting.CuttingDataResponse {
	resp := cutting.CuttingDataResponse{
		ID:              cd.ID,
		CuttingUser:     cd.CuttingUserID,
		CuttingUserName: userName,
		Date:            cd.Date.Format("2006-01-02"),
		Entries:         make([]cutting.CuttingEntryResponse, 0, len(cd.Entries)),
		Total:           decimal.Zero,
	}
	for _, e := range cd.Entries {
		tp := prices[e.ThreadPriceID]
		total := tp.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		resp.Entries = append(resp.Entries, cutting.CuttingEntryResponse{
			ThreadPrice:     e.ThreadPriceID,
			ThreadPriceName: tp.Name,
			Price:           tp.Price,
			Quantity:        e.Quantity,
			Total:           total.Round(2),
		})
		resp.Total = resp.Total.Add(total)
	}
	sort.Slice(resp.Entries, func(i, j int) bool {
		return resp.Entries[i].Price.LessThan(resp.Entries[j].Price)
	})
	resp.Total = resp.Total.Round(2)
	return resp
}

func (s *CuttingServiceImpl) ListCuttingData(ctx context.Context, month string) ([]cutting.CuttingDateGroup, error) {
	var from, to time.Time
	if month != "" {
		if !validator.IsValidMonth(month) {
			return nil, validator.ValidationErrors{{Field: "monthYear", Message: "must be in YYYY-MM format"}}
		}
		var err error
		if from, to, err = validator.MonthBounds(month); err != nil {
			return nil, err
		}
	}

	lists, err := s.cuttingDataRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	prices, err := s.priceIndex(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userIndex(ctx)
	if err != nil {
		return nil, err
	}

	// Rows arrive newest date first; keep that order while grouping.
	groups := make([]cutting.CuttingDateGroup, 0)
	groupIdx := make(map[string]int)
	for _, cd := range lists {
		resp := buildCuttingDataResponse(cd, users[cd.CuttingUserID].Name, prices)
		idx, ok := groupIdx[resp.Date]
		if !ok {
			idx = len(groups)
			groupIdx[resp.Date] = idx
			groups = append(groups, cutting.CuttingDateGroup{Date: resp.Date, Subtotal: decimal.Zero})
		}
		groups[idx].Lists = append(groups[idx].Lists, resp)
		groups[idx].Subtotal = groups[idx].Subtotal.Add(resp.Total)
	}
	for i := range groups {
		groups[i].Subtotal = groups[i].Subtotal.Round(0)
	}

	return groups, nil
}

func (s *CuttingServiceImpl) UpdateCuttingData(ctx context.Context, req cutting.UpdateCuttingDataRequest) (cutting.CuttingDataResponse, error) {
	if err := req.Validate(); err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	cd, err := s.cuttingDataRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	if req.CuttingUser != nil {
		if _, err := s.cuttingUserRepo.GetByID(ctx, *req.CuttingUser); err != nil {
			return cutting.CuttingDataResponse{}, err
		}
		cd.CuttingUserID = *req.CuttingUser
	}
	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		cd.Date = date
	}
	if req.Entries != nil {
		entries, err := s.resolveCuttingEntries(ctx, req.Entries)
		if err != nil {
			return cutting.CuttingDataResponse{}, err
		}
		cd.Entries = entries
	}

	updated, err := s.cuttingDataRepo.Update(ctx, cd)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	cu, err := s.cuttingUserRepo.GetByID(ctx, updated.CuttingUserID)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}
	prices, err := s.priceIndex(ctx)
	if err != nil {
		return cutting.CuttingDataResponse{}, err
	}

	return buildCuttingDataResponse(updated, cu.Name, prices), nil
}

func (s *CuttingServiceImpl) DeleteCuttingData(ctx context.Context, id string) error {
	return s.cuttingDataRepo.Delete(ctx, id)
}

func (s *CuttingServiceImpl) MonthCuttingCount(ctx context.Context, month string) (cutting.MonthCuttingCountResponse, error) {
	if !validator.IsValidMonth(month) {
		return cutting.MonthCuttingCountResponse{}, validator.ValidationErrors{{Field: "monthYear", Message: "must be in YYYY-MM format"}}
	}

	from, to, err := validator.MonthBounds(month)
	if err != nil {
		return cutting.MonthCuttingCountResponse{}, err
	}
	lists, err := s.cuttingDataRepo.List(ctx, from, to)
	if err != nil {
		return cutting.MonthCuttingCountResponse{}, err
	}
	prices, err := s.priceIndex(ctx)
	if err != nil {
		return cutting.MonthCuttingCountResponse{}, err
	}
	users, err := s.userIndex(ctx)
	if err != nil {
		return cutting.MonthCuttingCountResponse{}, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, cd := range lists {
		sum := decimal.Zero
		for _, e := range cd.Entries {
			sum = sum.Add(prices[e.ThreadPriceID].Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
		}
		name := users[cd.CuttingUserID].Name
		totals[name] = totals[name].Add(sum)
	}

	resp := cutting.MonthCuttingCountResponse{
		Month:        month,
		Users:        make([]cutting.CuttingUserTotal, 0, len(totals)),
		OverallTotal: decimal.Zero,
	}
	for name, total := range totals {
		resp.Users = append(resp.Users, cutting.CuttingUserTotal{CuttingUserName: name, Total: total.Round(2)})
		resp.OverallTotal = resp.OverallTotal.Add(total)
	}
	sort.Slice(resp.Users, func(i, j int) bool {
		return strings.ToLower(resp.Users[i].CuttingUserName) < strings.ToLower(resp.Users[j].CuttingUserName)
	})
	resp.OverallTotal = resp.OverallTotal.Round(2)

	return resp, nil
}
