package plorth_test

import (
	"math"
	"testing"

	"github.com/plorth/plorth"
	"github.com/plorth/plorth/testutils"
)

func TestParseNumber(t *testing.T) {
	rt := testutils.TestingRuntime()
	cases := map[string]struct {
		text    string
		wantErr bool
		real    bool
		i       int64
		f       float64
	}{
		"Int":          {text: "42", i: 42},
		"NegativeInt":  {text: "-42", i: -42},
		"SignedInt":    {text: "+7", i: 7},
		"Zero":         {text: "0", i: 0},
		"Real":         {text: "3.5", real: true, f: 3.5},
		"Exponent":     {text: "1e3", real: true, f: 1000},
		"SignedExp":    {text: "2.5e-1", real: true, f: 0.25},
		"UpperExp":     {text: "1E2", real: true, f: 100},
		"MaxInt":       {text: "9223372036854775807", i: math.MaxInt64},
		"Overflow":     {text: "9223372036854775808", wantErr: true},
		"NegOverflow":  {text: "-9223372036854775809", wantErr: true},
		"Empty":        {text: "", wantErr: true},
		"Word":         {text: "forty", wantErr: true},
		"TrailingDot":  {text: "1.", wantErr: true},
		"LoneSign":     {text: "-", wantErr: true},
		"DoubleSign":   {text: "--1", wantErr: true},
		"SpacePadding": {text: " 1", wantErr: true},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			num, err := rt.ParseNumber(c.text)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseNumber(%q) = %v, want error", c.text, num)
				}
				if err.Code() != plorth.CodeValue {
					t.Fatalf("ParseNumber(%q) reported %v, want value error", c.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q) reported %v", c.text, err)
			}
			if num.IsReal() != c.real {
				t.Fatalf("ParseNumber(%q) real = %v, want %v", c.text, num.IsReal(), c.real)
			}
			if c.real {
				if num.AsReal() != c.f {
					t.Errorf("ParseNumber(%q) = %v, want %v", c.text, num.AsReal(), c.f)
				}
			} else if num.AsInt() != c.i {
				t.Errorf("ParseNumber(%q) = %v, want %v", c.text, num.AsInt(), c.i)
			}
		})
	}
}

func TestNumberArithmetic(t *testing.T) {
	rt := testutils.TestingRuntime()
	cases := map[string]testutils.SourceTestCase{
		"IntAdd": {
			Source:    `1 2 +`,
			WantStack: []plorth.Value{rt.NewInt(3)},
		},
		"IntSub": {
			Source:    `1 2 -`,
			WantStack: []plorth.Value{rt.NewInt(-1)},
		},
		"IntMul": {
			Source:    `6 7 *`,
			WantStack: []plorth.Value{rt.NewInt(42)},
		},
		"Promotion": {
			Source:    `1 0.5 +`,
			WantStack: []plorth.Value{rt.NewReal(1.5)},
		},
		"DivIsReal": {
			Source:    `1 2 /`,
			WantStack: []plorth.Value{rt.NewReal(0.5)},
		},
		"IntMod": {
			Source:    `7 3 %`,
			WantStack: []plorth.Value{rt.NewInt(1)},
		},
		"ModByZero": {
			Source:  `1 0 %`,
			WantErr: plorth.CodeRange,
		},
		"AddOverflow": {
			Source:  `9223372036854775807 1 +`,
			WantErr: plorth.CodeRange,
		},
		"SubOverflow": {
			Source:  `-9223372036854775808 1 -`,
			WantErr: plorth.CodeRange,
		},
		"MulOverflow": {
			Source:  `4611686018427387904 2 *`,
			WantErr: plorth.CodeRange,
		},
		"Comparison": {
			Source:    `1 2 <`,
			WantStack: []plorth.Value{rt.NewBoolean(true)},
		},
		"MixedComparison": {
			Source:    `2.5 2 >=`,
			WantStack: []plorth.Value{rt.NewBoolean(true)},
		},
		"Abs": {
			Source:    `-5 abs`,
			WantStack: []plorth.Value{rt.NewInt(5)},
		},
		"Neg": {
			Source:    `5 neg`,
			WantStack: []plorth.Value{rt.NewInt(-5)},
		},
		"MinMax": {
			Source:    `1 2 min 3 max`,
			WantStack: []plorth.Value{rt.NewInt(3)},
		},
		"Floor": {
			Source:    `1.7 floor`,
			WantStack: []plorth.Value{rt.NewReal(1)},
		},
		"Ceil": {
			Source:    `1.2 ceil`,
			WantStack: []plorth.Value{rt.NewReal(2)},
		},
		"Round": {
			Source:    `1.5 round`,
			WantStack: []plorth.Value{rt.NewReal(2)},
		},
		"TypeMismatch": {
			Source:  `1 "x" +`,
			WantErr: plorth.CodeType,
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
