package datetime

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	f := Fields{Year: 2023, Month: 7, Day: 15, Hour: 13, Minute: 45, Second: 30, Microsecond: 123456}
	p := New(f)

	if p.Year() != f.Year {
		t.Fatalf("Year: expected %d, got %d", f.Year, p.Year())
	}
	if p.Month() != f.Month {
		t.Fatalf("Month: expected %d, got %d", f.Month, p.Month())
	}
	if p.Day() != f.Day {
		t.Fatalf("Day: expected %d, got %d", f.Day, p.Day())
	}
	if p.Hour() != f.Hour {
		t.Fatalf("Hour: expected %d, got %d", f.Hour, p.Hour())
	}
	if p.Minute() != f.Minute {
		t.Fatalf("Minute: expected %d, got %d", f.Minute, p.Minute())
	}
	if p.Second() != f.Second {
		t.Fatalf("Second: expected %d, got %d", f.Second, p.Second())
	}
	if p.Microsecond() != f.Microsecond {
		t.Fatalf("Microsecond: expected %d, got %d", f.Microsecond, p.Microsecond())
	}

	got := p.Unpack()
	if got != f {
		t.Fatalf("Unpack: expected %+v, got %+v", f, got)
	}
}

func TestZeroValue(t *testing.T) {
	var p Packed
	f := p.Unpack()
	if f != (Fields{}) {
		t.Fatalf("expected zero fields, got %+v", f)
	}
}
