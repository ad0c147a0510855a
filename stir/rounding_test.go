package stir_test

import (
	"errors"
	"math"
	"testing"

	"github.com/EmilienVaast/STIR-Futures/stir"
)

func TestRoundHalfEven(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{2.5, 0, 2.0},     // tie to even, down
		{3.5, 0, 4.0},     // tie to even, up
		{0.12345, 4, 0.1234}, // tie, 1234 is even
		{0.12355, 4, 0.1236}, // tie, 1235 is odd
		{4.3754, 3, 4.375},
		{4.3756, 3, 4.376},
	}
	for _, c := range cases {
		got := stir.RoundHalfEven(c.x, c.decimals)
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("RoundHalfEven(%v, %d): got %v want %v", c.x, c.decimals, got, c.want)
		}
	}
}

func TestRound_OnTickUnchanged(t *testing.T) {
	t.Parallel()

	got, err := stir.DefaultRounding.Round(stir.SR1, 95.6225)
	if err != nil {
		t.Fatalf("Round error: %v", err)
	}
	if math.Abs(got-95.6225) > 1e-9 {
		t.Fatalf("on-tick price changed: got %v", got)
	}
}

func TestRound_TieGoesToEvenTick(t *testing.T) {
	t.Parallel()

	// 95.62375 sits exactly between ticks 38249 and 38250 (x0.0025);
	// banker's rounding picks the even tick 38250 -> 95.6250.
	got, err := stir.DefaultRounding.Round(stir.SR1, 95.62375)
	if err != nil {
		t.Fatalf("Round error: %v", err)
	}
	if math.Abs(got-95.6250) > 1e-9 {
		t.Fatalf("tie up to even: got %v want 95.6250", got)
	}

	// 95.61625 sits between ticks 38246 and 38247; the even tick is below.
	// Half-up rounding would give 95.6175 here.
	got, err = stir.DefaultRounding.Round(stir.SR1, 95.61625)
	if err != nil {
		t.Fatalf("Round error: %v", err)
	}
	if math.Abs(got-95.6150) > 1e-9 {
		t.Fatalf("tie down to even: got %v want 95.6150", got)
	}
}

func TestRound_UnknownContractType(t *testing.T) {
	t.Parallel()

	_, err := stir.DefaultRounding.Round(stir.ContractType("ED"), 95.0)
	var unknown *stir.UnknownContractTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownContractTypeError, got %v", err)
	}
}
