package calculation

import (
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PLFRates are the discrete expected-rate columns of the built-in PLF tables
var PLFRates = []string{"5.0", "5.5", "6.0", "6.5", "7.0", "7.5", "8.0"}

// DefaultAssumptions returns the built-in regulatory data (2025 tax year).
// Each call returns a fresh copy so callers may modify it.
func DefaultAssumptions() *domain.Assumptions {
	return &domain.Assumptions{
		Metadata: domain.AssumptionsMetadata{
			TaxYear:     2025,
			LastUpdated: "2025-01-01",
			Description: "Built-in defaults: 2024 single-filer bracket room, 2025 FHA lending limit, IRS Pub. 590-B (2022) tables",
		},
		Roth: domain.RothAssumptions{
			GrowthRate:      decimal.NewFromFloat(0.06),
			BracketCeilings: defaultBracketCeilings(),
		},
		HECM: domain.HECMAssumptions{
			MinimumAge:                 62,
			LendingLimit:               decimal.NewFromInt(1209750),
			GovernmentOriginationRate:  decimal.NewFromFloat(0.02),
			OriginationFloor:           decimal.NewFromInt(2500),
			OriginationCeiling:         decimal.NewFromInt(6000),
			UpfrontMIPRate:             decimal.NewFromFloat(0.02),
			AnnualMIPRate:              decimal.NewFromFloat(0.005),
			GovernmentClosingCosts:     decimal.NewFromInt(3500),
			ProprietaryOriginationRate: decimal.NewFromFloat(0.02),
			ProprietaryClosingCosts:    decimal.NewFromInt(5000),
			ProjectionYears:            15,
			ComparisonYear:             10,
			GovernmentPLF:              defaultGovernmentPLF(),
			ProprietaryPLF:             defaultProprietaryPLF(),
		},
		InheritedIRA: domain.InheritedIRAAssumptions{
			RequiredBeginningAge: 73,
			SecureActYear:        2020,
			TenYearWindow:        10,
			FiveYearWindow:       5,
			RolloverCapYears:     30,
			StretchCapYears:      40,
			DepletionThreshold:   decimal.NewFromInt(100),
			SingleLife:           defaultSingleLifeTable(),
			UniformLifetime:      defaultUniformLifetimeTable(),
		},
	}
}

// Room in each federal bracket for a single filer (2024 brackets).
// The 37% bracket has no ceiling.
func defaultBracketCeilings() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		10: decimal.NewFromInt(11600),
		12: decimal.NewFromInt(35550),
		22: decimal.NewFromInt(53375),
		24: decimal.NewFromInt(91425),
		32: decimal.NewFromInt(51775),
		35: decimal.NewFromInt(365625),
	}
}

// plfRow maps factors onto PLFRates in order
func plfRow(factors ...float64) map[string]decimal.Decimal {
	row := make(map[string]decimal.Decimal, len(factors))
	for i, f := range factors {
		row[PLFRates[i]] = decimal.NewFromFloat(f)
	}
	return row
}

func defaultGovernmentPLF() domain.PLFTable {
	return domain.PLFTable{
		//      5.0    5.5    6.0    6.5    7.0    7.5    8.0
		62: plfRow(0.439, 0.409, 0.380, 0.352, 0.326, 0.301, 0.278),
		65: plfRow(0.471, 0.442, 0.414, 0.387, 0.360, 0.335, 0.311),
		70: plfRow(0.524, 0.496, 0.468, 0.441, 0.414, 0.388, 0.362),
		75: plfRow(0.566, 0.541, 0.516, 0.491, 0.466, 0.441, 0.417),
		80: plfRow(0.614, 0.592, 0.570, 0.548, 0.526, 0.504, 0.482),
		85: plfRow(0.662, 0.644, 0.626, 0.607, 0.588, 0.569, 0.550),
		90: plfRow(0.712, 0.698, 0.683, 0.668, 0.652, 0.636, 0.620),
	}
}

func defaultProprietaryPLF() domain.PLFTable {
	return domain.PLFTable{
		62: plfRow(0.392, 0.364, 0.337, 0.311, 0.287, 0.264, 0.243),
		65: plfRow(0.423, 0.395, 0.368, 0.342, 0.317, 0.294, 0.272),
		70: plfRow(0.474, 0.446, 0.418, 0.392, 0.366, 0.341, 0.317),
		75: plfRow(0.516, 0.491, 0.466, 0.441, 0.417, 0.393, 0.370),
		80: plfRow(0.563, 0.541, 0.519, 0.497, 0.475, 0.453, 0.432),
		85: plfRow(0.610, 0.592, 0.574, 0.555, 0.536, 0.517, 0.499),
		90: plfRow(0.659, 0.645, 0.630, 0.615, 0.599, 0.583, 0.567),
	}
}

// lifeTable builds a table of consecutive ages starting at firstAge
func lifeTable(firstAge int, divisors ...float64) domain.LifeExpectancyTable {
	t := make(domain.LifeExpectancyTable, len(divisors))
	for i, d := range divisors {
		t[firstAge+i] = decimal.NewFromFloat(d)
	}
	return t
}

// IRS Single Life Expectancy Table (Pub. 590-B, Table I), ages 0-120
func defaultSingleLifeTable() domain.LifeExpectancyTable {
	return lifeTable(0,
		84.6, 83.7, 82.8, 81.8, 80.8, 79.8, 78.8, 77.9, 76.9, 75.9, // 0-9
		74.9, 73.9, 72.9, 71.9, 70.9, 69.9, 69.0, 68.0, 67.0, 66.0, // 10-19
		65.0, 64.1, 63.1, 62.1, 61.1, 60.2, 59.2, 58.2, 57.3, 56.3, // 20-29
		55.3, 54.4, 53.4, 52.5, 51.5, 50.5, 49.6, 48.6, 47.7, 46.7, // 30-39
		45.7, 44.8, 43.8, 42.9, 41.9, 41.0, 40.0, 39.0, 38.1, 37.1, // 40-49
		36.2, 35.3, 34.3, 33.4, 32.5, 31.6, 30.6, 29.8, 28.9, 28.0, // 50-59
		27.1, 26.2, 25.4, 24.5, 23.7, 22.9, 22.0, 21.2, 20.4, 19.6, // 60-69
		18.8, 18.0, 17.2, 16.4, 15.6, 14.8, 14.1, 13.3, 12.6, 11.9, // 70-79
		11.2, 10.5, 9.9, 9.3, 8.7, 8.1, 7.6, 7.1, 6.6, 6.1, // 80-89
		5.7, 5.3, 4.9, 4.6, 4.3, 4.0, 3.7, 3.4, 3.2, 3.0, // 90-99
		2.8, 2.6, 2.5, 2.3, 2.2, 2.1, 2.1, 2.1, 2.0, 2.0, // 100-109
		2.0, 2.0, 2.0, 1.9, 1.9, 1.8, 1.8, 1.6, 1.4, 1.1, // 110-119
		1.0, // 120
	)
}

// IRS Uniform Lifetime Table (Pub. 590-B, Table III), ages 72-120
func defaultUniformLifetimeTable() domain.LifeExpectancyTable {
	return lifeTable(72,
		27.4, 26.5, 25.5, 24.6, 23.7, 22.9, 22.0, 21.1, // 72-79
		20.2, 19.4, 18.5, 17.7, 16.8, 16.0, 15.2, 14.4, 13.7, 12.9, // 80-89
		12.2, 11.5, 10.8, 10.1, 9.5, 8.9, 8.4, 7.8, 7.3, 6.8, // 90-99
		6.4, 6.0, 5.6, 5.2, 4.9, 4.6, 4.3, 4.1, 3.9, 3.7, // 100-109
		3.5, 3.4, 3.3, 3.1, 3.0, 2.9, 2.8, 2.7, 2.5, 2.3, // 110-119
		2.0, // 120
	)
}
