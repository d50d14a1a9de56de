package salary

import (
	"testing"
	"time"

	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/factrack/factrack-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func topRecord(t *testing.T, date string, prod float64) production.WorkerProduction {
	t.Helper()
	return production.WorkerProduction{
		Date:       day(t, date),
		Category:   "Top",
		Production: &prod,
	}
}

func duppataRecord(t *testing.T, date string, pairs ...production.FramePair) production.WorkerProduction {
	t.Helper()
	return production.WorkerProduction{
		Date:     day(t, date),
		Category: "Duppata",
		Frames:   pairs,
	}
}

func TestComputeTopDays_TargetMet(t *testing.T) {
	records := []production.WorkerProduction{topRecord(t, "2025-03-01", 280)}

	days, totals := computeTopDays(records, 280, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	assert.Equal(t, salary.StatusAchieved, days[0].Status)
	assert.True(t, days[0].FixSalCount.Equal(decimal.NewFromInt(400)), "got %s", days[0].FixSalCount)
	assert.True(t, days[0].Bonus.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, 1, totals.DaysMetTarget)
	assert.True(t, totals.FinalSalary.Equal(decimal.NewFromInt(500)), "got %s", totals.FinalSalary)
}

func TestComputeTopDays_TargetMissedIsProRated(t *testing.T) {
	records := []production.WorkerProduction{topRecord(t, "2025-03-01", 140)}

	days, totals := computeTopDays(records, 280, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	assert.Equal(t, salary.StatusNotAchieved, days[0].Status)
	assert.True(t, days[0].FixSalCount.Equal(decimal.NewFromInt(200)), "got %s", days[0].FixSalCount)
	assert.True(t, days[0].Bonus.IsZero())

	assert.Equal(t, 0, totals.DaysMetTarget)
	assert.True(t, totals.TotalBonus.IsZero())
	assert.True(t, totals.FinalSalary.Equal(decimal.NewFromInt(200)))
}

func TestComputeTopDays_SameDayRecordsSum(t *testing.T) {
	records := []production.WorkerProduction{
		topRecord(t, "2025-03-02", 150),
		topRecord(t, "2025-03-02", 150),
	}

	days, totals := computeTopDays(records, 280, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	require.NotNil(t, days[0].Production)
	assert.Equal(t, 300.0, *days[0].Production)
	assert.Equal(t, salary.StatusAchieved, days[0].Status)
	assert.Equal(t, 1, totals.DaysMetTarget)
}

func TestComputeTopDays_ZeroTargetPaysNothing(t *testing.T) {
	records := []production.WorkerProduction{topRecord(t, "2025-03-01", 500)}

	days, totals := computeTopDays(records, 0, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	assert.Equal(t, salary.StatusNotAchieved, days[0].Status)
	assert.True(t, days[0].FixSalCount.IsZero())
	assert.True(t, totals.FinalSalary.IsZero())
}

func TestComputeTopDays_DaysSortedAndTotalled(t *testing.T) {
	records := []production.WorkerProduction{
		topRecord(t, "2025-03-05", 280),
		topRecord(t, "2025-03-01", 140),
	}

	days, totals := computeTopDays(records, 280, decimal.NewFromInt(400))

	require.Len(t, days, 2)
	assert.Equal(t, "2025-03-01", days[0].Date)
	assert.Equal(t, "2025-03-05", days[1].Date)

	require.NotNil(t, totals.TotalProduction)
	assert.Equal(t, 420.0, *totals.TotalProduction)
	assert.Equal(t, 1, totals.DaysMetTarget)
	// 200 pro-rated + 400 full + 100 bonus
	assert.True(t, totals.FinalSalary.Equal(decimal.NewFromInt(700)), "got %s", totals.FinalSalary)
}

func TestComputeDuppataDays_PercentageAboveHundredAchieves(t *testing.T) {
	records := []production.WorkerProduction{
		duppataRecord(t, "2025-03-01",
			production.FramePair{Production: 50, Frame: 100},
			production.FramePair{Production: 60, Frame: 100},
		),
	}

	days, totals := computeDuppataDays(records, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	require.NotNil(t, days[0].TotalPercentage)
	assert.Equal(t, 110.0, *days[0].TotalPercentage)
	assert.Equal(t, salary.StatusAchieved, days[0].Status)
	assert.True(t, days[0].FixSalCount.Equal(decimal.NewFromInt(400)))
	assert.True(t, totals.FinalSalary.Equal(decimal.NewFromInt(500)))
}

func TestComputeDuppataDays_PartialDayIsProRated(t *testing.T) {
	records := []production.WorkerProduction{
		duppataRecord(t, "2025-03-01", production.FramePair{Production: 25, Frame: 100}),
	}

	days, totals := computeDuppataDays(records, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	assert.Equal(t, salary.StatusNotAchieved, days[0].Status)
	assert.True(t, days[0].FixSalCount.Equal(decimal.NewFromInt(100)), "got %s", days[0].FixSalCount)
	assert.True(t, days[0].Bonus.IsZero())
	assert.Equal(t, 0, totals.DaysMetTarget)
}

func TestComputeDuppataDays_ZeroFramePairSkipped(t *testing.T) {
	records := []production.WorkerProduction{
		duppataRecord(t, "2025-03-01",
			production.FramePair{Production: 100, Frame: 100},
			production.FramePair{Production: 40, Frame: 0},
		),
	}

	days, _ := computeDuppataDays(records, decimal.NewFromInt(400))

	require.Len(t, days, 1)
	require.NotNil(t, days[0].TotalPercentage)
	assert.Equal(t, 100.0, *days[0].TotalPercentage)
	assert.Len(t, days[0].Frames, 2)
}
