package models

import "testing"

func intPtr(i int) *int { return &i }

func TestPregnancyReportTrimester(t *testing.T) {
	tests := []struct {
		name  string
		weeks *int
		want  string
	}{
		{
			name:  "unknown when gestation weeks not recorded",
			weeks: nil,
			want:  TrimesterUnknown,
		},
		{
			name:  "week 1 is first trimester",
			weeks: intPtr(1),
			want:  TrimesterFirst,
		},
		{
			name:  "week 12 boundary is first trimester",
			weeks: intPtr(12),
			want:  TrimesterFirst,
		},
		{
			name:  "week 13 is second trimester",
			weeks: intPtr(13),
			want:  TrimesterSecond,
		},
		{
			name:  "week 28 boundary is second trimester",
			weeks: intPtr(28),
			want:  TrimesterSecond,
		},
		{
			name:  "week 29 is third trimester",
			weeks: intPtr(29),
			want:  TrimesterThird,
		},
		{
			name:  "week 40 is third trimester",
			weeks: intPtr(40),
			want:  TrimesterThird,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PregnancyReport{GestationWeeks: tt.weeks}
			if got := p.Trimester(); got != tt.want {
				t.Errorf("Trimester() = %q, want %q", got, tt.want)
			}
		})
	}
}
