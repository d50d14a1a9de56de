package production

import (
	"testing"

	"github.com/factrack/factrack-backend-go/internal/domain/machine"
	"github.com/factrack/factrack-backend-go/internal/domain/production"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestCheckShape(t *testing.T) {
	pairs := func(n int) []production.FramePair {
		out := make([]production.FramePair, n)
		for i := range out {
			out[i] = production.FramePair{Production: 50, Frame: 100}
		}
		return out
	}

	tests := []struct {
		name     string
		category machine.Category
		prod     *float64
		frames   []production.FramePair
		wantErr  bool
	}{
		{name: "top with production", category: machine.CategoryTop, prod: floatPtr(280)},
		{name: "top without production", category: machine.CategoryTop, wantErr: true},
		{name: "top with frames", category: machine.CategoryTop, prod: floatPtr(280), frames: pairs(1), wantErr: true},
		{name: "duppata with one pair", category: machine.CategoryDuppata, frames: pairs(1)},
		{name: "duppata with three pairs", category: machine.CategoryDuppata, frames: pairs(3)},
		{name: "duppata without pairs", category: machine.CategoryDuppata, wantErr: true},
		{name: "duppata with production", category: machine.CategoryDuppata, prod: floatPtr(100), frames: pairs(1), wantErr: true},
		{name: "unknown category", category: machine.Category("Saree"), prod: floatPtr(100), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkShape(tt.category, tt.prod, tt.frames)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
