package convert

import (
	"math"
)

func TwoDecimals(number float64) float64 {
	return RoundFloat64(number, 2)
}

func RoundFloat64(number float64, decimals int) float64 {
	return math.Round(number*math.Pow10(int(decimals))) / math.Pow10(int(decimals))
}

func RoundAll(numbers []float64, decimals int) []float64 {
	result := make([]float64, len(numbers))
	for i, n := range numbers {
		result[i] = RoundFloat64(n, decimals)
	}
	return result
}
