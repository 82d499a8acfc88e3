package wiretype

import (
	"testing"

	"github.com/go-mysql-org/go-mysql/mysql"
)

func TestFamilyOf(t *testing.T) {
	cases := map[byte]Family{
		mysql.MYSQL_TYPE_TINY:       FamilyInteger,
		mysql.MYSQL_TYPE_LONGLONG:   FamilyInteger,
		mysql.MYSQL_TYPE_YEAR:       FamilyInteger,
		mysql.MYSQL_TYPE_FLOAT:      FamilyFloat,
		mysql.MYSQL_TYPE_DOUBLE:     FamilyFloat,
		mysql.MYSQL_TYPE_DATE:       FamilyTime,
		mysql.MYSQL_TYPE_DATETIME:   FamilyTime,
		mysql.MYSQL_TYPE_TIMESTAMP:  FamilyTime,
		mysql.MYSQL_TYPE_NEWDECIMAL: FamilyDecimal,
		mysql.MYSQL_TYPE_VARCHAR:    FamilyString,
		mysql.MYSQL_TYPE_STRING:     FamilyString,
		mysql.MYSQL_TYPE_BLOB:       FamilyString,
		mysql.MYSQL_TYPE_BIT:        FamilyUnknown,
	}
	for code, want := range cases {
		if got := FamilyOf(code); got != want {
			t.Fatalf("FamilyOf(%d): expected %v, got %v", code, want, got)
		}
	}
}

func TestFieldFlags(t *testing.T) {
	f := Field{Name: "x", Type: mysql.MYSQL_TYPE_TINY, Flags: mysql.UNSIGNED_FLAG | mysql.NOT_NULL_FLAG}
	if !f.Unsigned() {
		t.Fatal("expected Unsigned() true")
	}
	if !f.NotNull() {
		t.Fatal("expected NotNull() true")
	}

	f2 := Field{Name: "y", Type: mysql.MYSQL_TYPE_LONG}
	if f2.Unsigned() || f2.NotNull() {
		t.Fatal("expected no flags set")
	}
}

func TestFieldLength(t *testing.T) {
	cases := map[byte]int{
		mysql.MYSQL_TYPE_LONGLONG:   8,
		mysql.MYSQL_TYPE_FLOAT:      4,
		mysql.MYSQL_TYPE_DOUBLE:     8,
		mysql.MYSQL_TYPE_DATETIME:   20,
		mysql.MYSQL_TYPE_NEWDECIMAL: 40,
		mysql.MYSQL_TYPE_VARCHAR:    0,
	}
	for code, want := range cases {
		if got := FieldLength(code); got != want {
			t.Fatalf("FieldLength(%d): expected %d, got %d", code, want, got)
		}
	}
}
