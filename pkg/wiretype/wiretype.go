// Package wiretype names the closed set of wire protocol type codes and
// flag bits the codec dispatches on. Rather than inventing a parallel
// enum, it reuses the constants already shipped by
// github.com/go-mysql-org/go-mysql/mysql — the real wire protocol
// spec.md's "wire column" models (the MySQL/TiDB client-server row
// format).
package wiretype

import "github.com/go-mysql-org/go-mysql/mysql"

// Code is a protocol type code, e.g. mysql.MYSQL_TYPE_LONGLONG.
type Code = byte

// Flags is the protocol column flag bitset, e.g. mysql.UNSIGNED_FLAG.
type Flags = uint16

// Field is a declared wire column: its protocol type code and flags.
type Field struct {
	Name  string
	Type  Code
	Flags Flags
}

// Unsigned reports whether the UNSIGNED flag is set.
func (f Field) Unsigned() bool { return f.Flags&mysql.UNSIGNED_FLAG != 0 }

// NotNull reports whether the NOT NULL flag is set.
func (f Field) NotNull() bool { return f.Flags&mysql.NOT_NULL_FLAG != 0 }

// Family classifies a wire type code into one of the dispatcher's
// compatibility groups.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyInteger
	FamilyFloat
	FamilyTime
	FamilyDecimal
	FamilyString
)

func (f Family) String() string {
	switch f {
	case FamilyInteger:
		return "integer"
	case FamilyFloat:
		return "float"
	case FamilyTime:
		return "time"
	case FamilyDecimal:
		return "decimal"
	case FamilyString:
		return "string"
	default:
		return "unknown"
	}
}

// FamilyOf maps a wire type code to its compatibility family. Codes
// outside the closed set in spec.md §6.1 return FamilyUnknown, which
// the dispatcher turns into a NotImplemented error.
func FamilyOf(t Code) Family {
	switch t {
	case mysql.MYSQL_TYPE_TINY, mysql.MYSQL_TYPE_SHORT, mysql.MYSQL_TYPE_INT24,
		mysql.MYSQL_TYPE_LONG, mysql.MYSQL_TYPE_LONGLONG, mysql.MYSQL_TYPE_YEAR:
		return FamilyInteger
	case mysql.MYSQL_TYPE_FLOAT, mysql.MYSQL_TYPE_DOUBLE:
		return FamilyFloat
	case mysql.MYSQL_TYPE_DATE, mysql.MYSQL_TYPE_DATETIME, mysql.MYSQL_TYPE_TIMESTAMP:
		return FamilyTime
	case mysql.MYSQL_TYPE_NEWDECIMAL:
		return FamilyDecimal
	case mysql.MYSQL_TYPE_VARCHAR, mysql.MYSQL_TYPE_VAR_STRING, mysql.MYSQL_TYPE_STRING,
		mysql.MYSQL_TYPE_BLOB, mysql.MYSQL_TYPE_TINY_BLOB, mysql.MYSQL_TYPE_MEDIUM_BLOB,
		mysql.MYSQL_TYPE_LONG_BLOB:
		return FamilyString
	default:
		return FamilyUnknown
	}
}

// FieldLength returns the fixed per-row wire width for a type code, or
// 0 for the variable-length string family (which uses an offsets side
// array instead, per spec.md §4.4.3).
func FieldLength(t Code) int {
	switch FamilyOf(t) {
	case FamilyInteger:
		return 8
	case FamilyFloat:
		if t == mysql.MYSQL_TYPE_FLOAT {
			return 4
		}
		return 8
	case FamilyTime:
		return 20
	case FamilyDecimal:
		return 4 + 9*4
	default:
		return 0
	}
}
