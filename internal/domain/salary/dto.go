package salary

import (
	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/shopspring/decimal"
)

const (
	StatusAchieved    = "Achieved"
	StatusNotAchieved = "Not Achieved"
)

// DayBreakdown is one calendar day of the monthly salary sheet. Top days
// carry Production and TargetFrames, Duppata days carry TotalPercentage and
// the raw frame pairs.
type DayBreakdown struct {
	Date            string                 `json:"date"`
	Production      *float64               `json:"production,omitempty"`
	TotalPercentage *float64               `json:"totalPercentage,omitempty"`
	Frames          []production.FramePair `json:"frames,omitempty"`
	TargetFrames    *float64               `json:"targetFrames,omitempty"`
	FixSalCount     decimal.Decimal        `json:"fixSalCount"`
	Bonus           decimal.Decimal        `json:"bonus"`
	Status          string                 `json:"status"`
}

type Totals struct {
	TotalProduction  *float64        `json:"totalProduction,omitempty"`
	TotalPercentage  *float64        `json:"totalPercentage,omitempty"`
	TotalFixedSalary decimal.Decimal `json:"totalFixedSalary"`
	DaysMetTarget    int             `json:"daysMetTarget"`
	TotalBonus       decimal.Decimal `json:"totalBonus"`
	FinalSalary      decimal.Decimal `json:"finalSalary"`
}

type MonthlySalaryResponse struct {
	Category          string          `json:"category"`
	WorkerName        string          `json:"workerName"`
	MachineName       string          `json:"machineName"`
	Month             string          `json:"month"`
	FixSalCountPerDay decimal.Decimal `json:"fixSalCountPerDay"`
	TargetFrames      *float64        `json:"targetFrames,omitempty"`
	Days              []DayBreakdown  `json:"days"`
	Totals            Totals          `json:"totals"`
}
