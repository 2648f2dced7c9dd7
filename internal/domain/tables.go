package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MinimumDivisor is the floor applied to every life-expectancy divisor
var MinimumDivisor = decimal.NewFromInt(1)

// SortedKeys returns the keys of an int-keyed map in ascending order
func SortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// FloorKey returns the greatest key in ascending-sorted keys that is <= target.
// It reports false when target is below the smallest key.
func FloorKey(keys []int, target int) (int, bool) {
	i := sort.SearchInts(keys, target+1)
	if i == 0 {
		return 0, false
	}
	return keys[i-1], true
}

// FloorLookup returns the value stored at the greatest key <= target
func FloorLookup[V any](m map[int]V, target int) (V, bool) {
	var zero V
	key, ok := FloorKey(SortedKeys(m), target)
	if !ok {
		return zero, false
	}
	return m[key], true
}

// PLFTable maps an age bracket to principal limit factors keyed by expected rate ("6.0")
type PLFTable map[int]map[string]decimal.Decimal

// MinimumAge returns the youngest age bracket in the table
func (t PLFTable) MinimumAge() int {
	keys := SortedKeys(t)
	if len(keys) == 0 {
		return 0
	}
	return keys[0]
}

// Rates returns every rate key present in the table, ascending by numeric value
func (t PLFTable) Rates() []string {
	seen := map[string]bool{}
	var rates []string
	for _, row := range t {
		for rate := range row {
			if !seen[rate] {
				seen[rate] = true
				rates = append(rates, rate)
			}
		}
	}
	sort.Slice(rates, func(i, j int) bool {
		a, errA := decimal.NewFromString(rates[i])
		b, errB := decimal.NewFromString(rates[j])
		if errA != nil || errB != nil {
			return rates[i] < rates[j]
		}
		return a.LessThan(b)
	})
	return rates
}

// Lookup returns the factor for the bracket at or below age.
// bracketOK is false below the youngest bracket; rateOK is false for an unknown rate.
func (t PLFTable) Lookup(age int, rate string) (factor decimal.Decimal, bracket int, bracketOK, rateOK bool) {
	bracket, bracketOK = FloorKey(SortedKeys(t), age)
	if !bracketOK {
		return decimal.Zero, 0, false, false
	}
	factor, rateOK = t[bracket][rate]
	return factor, bracket, true, rateOK
}

// LifeExpectancyTable maps age to an IRS distribution divisor
type LifeExpectancyTable map[int]decimal.Decimal

// Divisor returns the divisor for age. Ages past the end of the table use the last
// entry, ages before the start use the first, and the result is never below 1.0.
func (t LifeExpectancyTable) Divisor(age int) decimal.Decimal {
	if len(t) == 0 {
		return MinimumDivisor
	}
	divisor, ok := FloorLookup(t, age)
	if !ok {
		divisor = t[SortedKeys(t)[0]]
	}
	return decimal.Max(divisor, MinimumDivisor)
}
