package salary

import (
	"math"
	"sort"

	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var bonusPerDay = decimal.NewFromInt(100)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// groupByDay buckets records by calendar date, preserving date order.
func groupByDay(records []production.WorkerProduction) ([]string, map[string][]production.WorkerProduction) {
	byDay := make(map[string][]production.WorkerProduction)
	days := make([]string, 0)
	for _, rec := range records {
		day := rec.Date.Format("2006-01-02")
		if _, ok := byDay[day]; !ok {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], rec)
	}
	sort.Strings(days)
	return days, byDay
}

// computeTopDays folds Top-category records into per-day breakdowns. A day
// meets target when its summed production reaches targetFrames; short days
// earn the base salary scaled by the fraction achieved. A zero target pays
// nothing.
func computeTopDays(records []production.WorkerProduction, targetFrames float64, fixSalCount decimal.Decimal) ([]salary.DayBreakdown, salary.Totals) {
	days, byDay := groupByDay(records)

	var (
		breakdowns      = make([]salary.DayBreakdown, 0, len(days))
		totalProduction float64
		totalFixed      = decimal.Zero
		totalBonus      = decimal.Zero
		daysMet         int
	)

	for _, day := range days {
		var dayTotal float64
		for _, rec := range byDay[day] {
			if rec.Production != nil {
				dayTotal += *rec.Production
			}
		}
		totalProduction += dayTotal

		var (
			dailyFix = decimal.Zero
			bonus    = decimal.Zero
			status   = salary.StatusNotAchieved
		)
		if targetFrames > 0 && dayTotal >= targetFrames {
			dailyFix = fixSalCount
			bonus = bonusPerDay
			status = salary.StatusAchieved
			daysMet++
		} else if targetFrames > 0 {
			dailyFix = fixSalCount.Mul(decimal.NewFromFloat(dayTotal / targetFrames))
		}

		totalFixed = totalFixed.Add(dailyFix)
		totalBonus = totalBonus.Add(bonus)

		prod := round2(dayTotal)
		target := targetFrames
		breakdowns = append(breakdowns, salary.DayBreakdown{
			Date:         day,
			Production:   &prod,
			TargetFrames: &target,
			FixSalCount:  dailyFix.Round(2),
			Bonus:        bonus,
			Status:       status,
		})
	}

	totalProd := round2(totalProduction)
	totals := salary.Totals{
		TotalProduction:  &totalProd,
		TotalFixedSalary: totalFixed.Round(2),
		DaysMetTarget:    daysMet,
		TotalBonus:       totalBonus,
		FinalSalary:      totalFixed.Add(totalBonus).Round(2),
	}

	return breakdowns, totals
}

// computeDuppataDays folds Duppata-category records into per-day breakdowns.
// Each frame pair contributes production/frame as a percentage; a day meets
// target at 100 percent combined.
func computeDuppataDays(records []production.WorkerProduction, fixSalCount decimal.Decimal) ([]salary.DayBreakdown, salary.Totals) {
	days, byDay := groupByDay(records)

	var (
		breakdowns      = make([]salary.DayBreakdown, 0, len(days))
		totalPercentage float64
		totalFixed      = decimal.Zero
		totalBonus      = decimal.Zero
		daysMet         int
	)

	for _, day := range days {
		var (
			dayPercentage float64
			pairs         []production.FramePair
		)
		for _, rec := range byDay[day] {
			for _, p := range rec.Frames {
				if p.Frame > 0 {
					dayPercentage += p.Production / p.Frame * 100
				}
				pairs = append(pairs, p)
			}
		}
		totalPercentage += dayPercentage

		var (
			dailyFix = decimal.Zero
			bonus    = decimal.Zero
			status   = salary.StatusNotAchieved
		)
		if dayPercentage >= 100 {
			dailyFix = fixSalCount
			bonus = bonusPerDay
			status = salary.StatusAchieved
			daysMet++
		} else {
			dailyFix = fixSalCount.Mul(decimal.NewFromFloat(dayPercentage / 100))
		}

		totalFixed = totalFixed.Add(dailyFix)
		totalBonus = totalBonus.Add(bonus)

		pct := round2(dayPercentage)
		breakdowns = append(breakdowns, salary.DayBreakdown{
			Date:            day,
			TotalPercentage: &pct,
			Frames:          pairs,
			FixSalCount:     dailyFix.Round(2),
			Bonus:           bonus,
			Status:          status,
		})
	}

	totalPct := round2(totalPercentage)
	totals := salary.Totals{
		TotalPercentage:  &totalPct,
		TotalFixedSalary: totalFixed.Round(2),
		DaysMetTarget:    daysMet,
		TotalBonus:       totalBonus,
		FinalSalary:      totalFixed.Add(totalBonus).Round(2),
	}

	return breakdowns, totals
}
