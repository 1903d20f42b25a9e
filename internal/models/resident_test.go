package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResidentFullName(t *testing.T) {
	tests := []struct {
		name     string
		resident Resident
		want     string
	}{
		{
			name:     "first and last only",
			resident: Resident{FirstName: "Ana", LastName: "Reyes"},
			want:     "Ana Reyes",
		},
		{
			name:     "with middle name",
			resident: Resident{FirstName: "Ana", MiddleName: "Santos", LastName: "Reyes"},
			want:     "Ana Santos Reyes",
		},
		{
			name:     "with suffix",
			resident: Resident{FirstName: "Jose", LastName: "Cruz", Suffix: "Jr."},
			want:     "Jose Cruz Jr.",
		},
		{
			name: "all parts",
			resident: Resident{
				FirstName: "Jose", MiddleName: "Protacio", LastName: "Rizal", Suffix: "III",
			},
			want: "Jose Protacio Rizal III",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resident.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResidentAge(t *testing.T) {
	today := date(2024, time.June, 15)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{
			name: "birthday already passed this year",
			dob:  date(1990, time.March, 1),
			want: 34,
		},
		{
			name: "birthday later this year",
			dob:  date(1990, time.December, 25),
			want: 33,
		},
		{
			name: "birthday is today",
			dob:  date(1990, time.June, 15),
			want: 34,
		},
		{
			name: "birthday is tomorrow",
			dob:  date(1990, time.June, 16),
			want: 33,
		},
		{
			name: "born this year",
			dob:  date(2024, time.January, 10),
			want: 0,
		},
		{
			name: "date of birth in the future yields negative age",
			dob:  date(2026, time.January, 1),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resident{DateOfBirth: tt.dob}
			if got := r.Age(today); got != tt.want {
				t.Errorf("Age(%v) = %d, want %d", today, got, tt.want)
			}
		})
	}
}

func TestResidentCompleteAddress(t *testing.T) {
	r := Resident{
		HouseNumber:      "123",
		Street:           "Mabini St",
		Zone:             "2",
		Barangay:         "San Isidro",
		CityMunicipality: "Naga City",
		Province:         "Camarines Sur",
		ZipCode:          "4400",
	}

	want := "123 Mabini St, Zone 2, San Isidro, Naga City, Camarines Sur 4400"
	if got := r.CompleteAddress(); got != want {
		t.Errorf("CompleteAddress() = %q, want %q", got, want)
	}
}

func TestResidentSummaryFullName(t *testing.T) {
	s := ResidentSummary{FirstName: "Maria", MiddleName: "Clara", LastName: "Ibarra"}
	if got := s.FullName(); got != "Maria Clara Ibarra" {
		t.Errorf("FullName() = %q, want %q", got, "Maria Clara Ibarra")
	}
}
