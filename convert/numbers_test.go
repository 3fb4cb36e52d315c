package convert

import "testing"

func TestRoundFloat64(t *testing.T) {
	if got := TwoDecimals(1.2345); got != 1.23 {
		t.Errorf("got %f, wanted %f", got, 1.23)
	}
	if got := RoundFloat64(0.98765, 4); got != 0.9877 {
		t.Errorf("got %f, wanted %f", got, 0.9877)
	}
	got := RoundAll([]float64{1.005, 2.499}, 1)
	if got[0] != 1.0 || got[1] != 2.5 {
		t.Errorf("got %v, wanted [1 2.5]", got)
	}
}
