// Package datetime implements the engine's packed calendar
// representation. spec.md treats the packed integer as opaque, owned
// by "external type support" (`MyDateTime::from_packed`/`to_packed`);
// this package is that external collaborator, giving the round-trip
// tests in spec.md §8 scenario 5 something concrete to construct.
// Nothing outside this package may assume a particular bit layout —
// callers go through the accessors below.
package datetime

// Packed is a 64-bit calendar value: year, month, day, hour, minute,
// second and microsecond bit-packed into one machine word. The layout
// is private to this package.
type Packed uint64

const (
	yearBits   = 18
	monthBits  = 4
	dayBits    = 5
	hourBits   = 5
	minuteBits = 6
	secondBits = 6
	microBits  = 20

	microShift  = 0
	secondShift = microShift + microBits
	minuteShift = secondShift + secondBits
	hourShift   = minuteShift + minuteBits
	dayShift    = hourShift + hourBits
	monthShift  = dayShift + dayBits
	yearShift   = monthShift + monthBits

	yearMask   = (1 << yearBits) - 1
	monthMask  = (1 << monthBits) - 1
	dayMask    = (1 << dayBits) - 1
	hourMask   = (1 << hourBits) - 1
	minuteMask = (1 << minuteBits) - 1
	secondMask = (1 << secondBits) - 1
	microMask  = (1 << microBits) - 1
)

// Fields is the unpacked representation of a Packed value. spec.md's
// non-goal on range validation applies here too: New and the wire
// codec never check month ∈ [1,12] or similar, they only pack bits.
type Fields struct {
	Year        uint32
	Month       uint8
	Day         uint8
	Hour        uint8
	Minute      uint8
	Second      uint8
	Microsecond uint32
}

// New packs calendar fields into a Packed value.
func New(f Fields) Packed {
	return Packed(uint64(f.Year&yearMask)<<yearShift |
		uint64(f.Month&monthMask)<<monthShift |
		uint64(f.Day&dayMask)<<dayShift |
		uint64(f.Hour&hourMask)<<hourShift |
		uint64(f.Minute&minuteMask)<<minuteShift |
		uint64(f.Second&secondMask)<<secondShift |
		uint64(f.Microsecond&microMask)<<microShift)
}

// Unpack returns the calendar fields encoded in p.
func (p Packed) Unpack() Fields {
	return Fields{
		Year:        uint32(p>>yearShift) & yearMask,
		Month:       uint8(p>>monthShift) & monthMask,
		Day:         uint8(p>>dayShift) & dayMask,
		Hour:        uint8(p>>hourShift) & hourMask,
		Minute:      uint8(p>>minuteShift) & minuteMask,
		Second:      uint8(p>>secondShift) & secondMask,
		Microsecond: uint32(p>>microShift) & microMask,
	}
}

func (p Packed) Year() uint32        { return uint32(p>>yearShift) & yearMask }
func (p Packed) Month() uint8        { return uint8(p>>monthShift) & monthMask }
func (p Packed) Day() uint8          { return uint8(p>>dayShift) & dayMask }
func (p Packed) Hour() uint8         { return uint8(p>>hourShift) & hourMask }
func (p Packed) Minute() uint8       { return uint8(p>>minuteShift) & minuteMask }
func (p Packed) Second() uint8       { return uint8(p>>secondShift) & secondMask }
func (p Packed) Microsecond() uint32 { return uint32(p>>microShift) & microMask }
