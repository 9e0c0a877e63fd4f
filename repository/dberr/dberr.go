package dberr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry    = 1062
	codeNoReferencedRow   = 1452
	codeNoReferencedRowV2 = 1216
)

// IsDuplicate reports a unique key violation.
func IsDuplicate(err error) bool {
	return hasCode(err, codeDuplicateEntry)
}

// IsMissingReference reports a foreign key violation on insert.
func IsMissingReference(err error) bool {
	return hasCode(err, codeNoReferencedRow, codeNoReferencedRowV2)
}

func hasCode(err error, codes ...uint16) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	for _, c := range codes {
		if me.Number == c {
			return true
		}
	}
	return false
}
