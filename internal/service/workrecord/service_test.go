package workrecord

import (
	"testing"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	top := func(head int) machine.Machine {
		return machine.Machine{Category: machine.CategoryTop, Head: head}
	}
	duppata := machine.Machine{Category: machine.CategoryDuppata, Head: 24}

	tests := []struct {
		name       string
		machine    machine.Machine
		production float64
		frames     float64
		bonus      int64
		salary     int64
		total      int64
	}{
		{
			name:       "small head top machine meets threshold",
			machine:    top(24),
			production: 280,
			frames:     300,
			bonus:      100,
			salary:     400,
			total:      288, // 280*0.6 + 300*0.4
		},
		{
			name:       "small head top machine below threshold",
			machine:    top(24),
			production: 200,
			frames:     300,
			bonus:      0,
			salary:     300, // 200*1.5
			total:      240,
		},
		{
			name:       "large head top machine meets raised threshold",
			machine:    top(28),
			production: 300,
			frames:     280,
			bonus:      100,
			salary:     400,
			total:      292, // 300*0.6 + 280*0.4
		},
		{
			name:       "large head top machine misses raised threshold",
			machine:    top(28),
			production: 290,
			frames:     280,
			bonus:      0,
			salary:     435, // 290*1.5
			total:      286,
		},
		{
			name:       "duppata machine frames track production",
			machine:    duppata,
			production: 150,
			frames:     150,
			bonus:      0,
			salary:     225,
			total:      150,
		},
		{
			name:       "duppata machine at threshold",
			machine:    duppata,
			production: 280,
			frames:     280,
			bonus:      100,
			salary:     400,
			total:      280,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, bonus, sal, total := derive(tt.machine, tt.production)
			assert.Equal(t, tt.frames, frames)
			assert.True(t, bonus.Equal(decimal.NewFromInt(tt.bonus)), "bonus: got %s", bonus)
			assert.True(t, sal.Equal(decimal.NewFromInt(tt.salary)), "salary: got %s", sal)
			assert.True(t, total.Equal(decimal.NewFromInt(tt.total)), "total: got %s", total)
		})
	}
}
