package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinkLines(t *testing.T) {
	tests := []struct {
		name  string
		drink Drink
		want  []string
	}{
		{
			name:  "sweet six ounces",
			drink: NewDrink(FlavorSweet, 6.0),
			want:  []string{"flavor: sweet", "OZ: 6.0"},
		},
		{
			name:  "fruity seven ounces",
			drink: NewDrink(FlavorFruity, 7.0),
			want:  []string{"flavor: fruity", "OZ: 7.0"},
		},
		{
			name:  "sparkling fractional ounces",
			drink: NewDrink(FlavorSparkling, 12.5),
			want:  []string{"flavor: sparkling", "OZ: 12.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.drink.Lines()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrinkLinesUnknownFlavor(t *testing.T) {
	_, err := Drink{FluidOz: 1}.Lines()
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestFormatOunces(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 6, want: "6.0"},
		{in: 0, want: "0.0"},
		{in: 6.25, want: "6.25"},
		{in: 0.1, want: "0.1"},
		{in: -3, want: "-3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOunces(tt.in))
		})
	}
}
