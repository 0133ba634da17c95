package calendar

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		day, month, year int
		style            Style
		want             string
	}{
		{5, 5, 2025, LongMonth, "05 May 2025"},
		{5, 5, 2025, SlashShortYear, "05/05/25"},
		{1, 1, 2025, LongMonth, "01 January 2025"},
		{31, 12, 1999, LongMonth, "31 December 1999"},
		{9, 3, 2007, SlashShortYear, "09/03/07"},
		{15, 11, 2100, SlashShortYear, "15/11/00"},
	}
	for _, tc := range cases {
		got, err := Format(tc.day, tc.month, tc.year, tc.style)
		if err != nil {
			t.Fatalf("Format(%d,%d,%d,%v): %v", tc.day, tc.month, tc.year, tc.style, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%d,%d,%d,%v) = %q, want %q", tc.day, tc.month, tc.year, tc.style, got, tc.want)
		}
	}
}

func TestFormat_InvalidMonth(t *testing.T) {
	if _, err := Format(1, 0, 2025, LongMonth); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{
		"long":             LongMonth,
		"Long-Month":       LongMonth,
		"slash":            SlashShortYear,
		"slash-short-year": SlashShortYear,
	} {
		got, err := ParseStyle(in)
		if err != nil || got != want {
			t.Fatalf("ParseStyle(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseStyle("iso"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown style, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (Date{Day: 29, Month: 2, Year: 2024}) {
		t.Fatalf("unexpected date %+v", d)
	}
	if d.ISO() != "2024-02-29" {
		t.Fatalf("unexpected ISO %q", d.ISO())
	}
	if _, err := ParseDate("2023-02-29"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDate_Before(t *testing.T) {
	a := Date{Day: 31, Month: 12, Year: 2024}
	b := Date{Day: 1, Month: 1, Year: 2025}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Fatalf("Before ordering is wrong")
	}
}
