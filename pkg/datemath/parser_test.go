package datemath_test

import (
	"testing"
	"time"

	"compliance-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	baseTime := time.Date(2026, 3, 4, 16, 45, 0, 0, time.UTC)
	if baseTime.Weekday() != time.Wednesday {
		t.Fatalf("fixture must be a Wednesday, got %v", baseTime.Weekday())
	}
	day := func(d int) time.Time {
		return time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "today", relative: "today", want: day(0)},
		{name: "tomorrow", relative: "tomorrow", want: day(1)},
		{name: "yesterday", relative: "yesterday", want: day(-1)},
		{name: "in 3 days", relative: "in 3 days", want: day(3)},
		{name: "in 2 weeks", relative: "in 2 weeks", want: day(14)},
		{name: "in 1 month", relative: "in 1 month", want: time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)},
		{name: "next monday", relative: "next monday", want: day(5)},
		{name: "next wednesday wraps a full week", relative: "next wednesday", want: day(7)},
		{name: "next week", relative: "next week", want: day(7)},
		{name: "mixed case is normalized", relative: "Next FRIDAY", want: day(2)},
		{name: "end of week closes on sunday", relative: "end of week", want: day(4)},
		{name: "end of month", relative: "end of month", want: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{name: "end of quarter", relative: "end of quarter", want: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{name: "vague duration errors", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "unknown weekday errors", relative: "next funday", want: baseTime, wantErr: true},
		{name: "unknown period errors", relative: "end of sprint", want: baseTime, wantErr: true},
		{name: "unrecognized phrase falls back to today", relative: "whenever convenient", want: day(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.relative, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.relative, got, tt.want)
			}
		})
	}
}

// Mid-quarter bases distinguish quarter ends from month ends.
func TestParseEndOfQuarterMidQuarter(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2026, 5, 15, 9, 0, 0, 0, time.UTC)

	got, err := parser.Parse("end of quarter", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse(end of quarter) = %v, want %v", got, want)
	}

	got, err = parser.Parse("end of month", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse(end of month) = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	want := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)

	if got := parser.EndOfDay(start); !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
}
