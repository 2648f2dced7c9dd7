package calculation

import (
	"testing"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptions_FreshCopy(t *testing.T) {
	a := DefaultAssumptions()
	a.HECM.GovernmentPLF[70]["6.0"] = d("0.999")
	a.Roth.BracketCeilings[24] = d("1")

	b := DefaultAssumptions()
	assert.True(t, b.HECM.GovernmentPLF[70]["6.0"].Equal(d("0.468")))
	assert.True(t, b.Roth.BracketCeilings[24].Equal(d("91425")))
}

func TestDefaultPLFTables_CoverEveryEligibleAgeAndRate(t *testing.T) {
	hecm := DefaultAssumptions().HECM

	for _, table := range []domain.PLFTable{hecm.GovernmentPLF, hecm.ProprietaryPLF} {
		assert.Equal(t, hecm.MinimumAge, table.MinimumAge())
		assert.Equal(t, PLFRates, table.Rates())
		for age := hecm.MinimumAge; age <= 110; age++ {
			for _, rate := range PLFRates {
				factor, err := lookupPLF(table, age, rate)
				require.NoError(t, err, "age %d rate %s", age, rate)
				assert.True(t, factor.IsPositive())
				assert.True(t, factor.LessThan(d("1")))
			}
		}
	}
}

func TestDefaultPLFTables_Shape(t *testing.T) {
	hecm := DefaultAssumptions().HECM
	gov, prop := hecm.GovernmentPLF, hecm.ProprietaryPLF
	ages := domain.SortedKeys(gov)

	assert.Equal(t, ages, domain.SortedKeys(prop))
	for i, age := range ages {
		for j, rate := range PLFRates {
			// Proprietary lenders advance less per dollar of value
			assert.True(t, prop[age][rate].LessThan(gov[age][rate]), "age %d rate %s", age, rate)

			if i > 0 {
				assert.True(t, gov[age][rate].GreaterThan(gov[ages[i-1]][rate]), "factor rises with age")
			}
			if j > 0 {
				assert.True(t, gov[age][rate].LessThan(gov[age][PLFRates[j-1]]), "factor falls with rate")
			}
		}
	}
}

func TestDefaultLifeTables(t *testing.T) {
	rules := DefaultAssumptions().InheritedIRA

	tests := []struct {
		name  string
		table domain.LifeExpectancyTable
		first int
	}{
		{"single life", rules.SingleLife, 0},
		{"uniform lifetime", rules.UniformLifetime, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := domain.SortedKeys(tt.table)
			require.NotEmpty(t, keys)
			assert.Equal(t, tt.first, keys[0])
			assert.Equal(t, 120, keys[len(keys)-1])
			assert.Len(t, keys, 120-tt.first+1, "ages must be contiguous")

			for i := 1; i < len(keys); i++ {
				assert.True(t, tt.table[keys[i]].LessThanOrEqual(tt.table[keys[i-1]]), "divisor never rises with age (%d)", keys[i])
				assert.True(t, tt.table[keys[i]].GreaterThanOrEqual(domain.MinimumDivisor))
			}
		})
	}

	assert.True(t, rules.SingleLife.Divisor(40).Equal(d("45.7")))
	assert.True(t, rules.SingleLife.Divisor(75).Equal(d("14.8")))
	assert.True(t, rules.UniformLifetime.Divisor(73).Equal(d("26.5")))
	assert.True(t, rules.UniformLifetime.Divisor(130).Equal(d("2.0")))
}
