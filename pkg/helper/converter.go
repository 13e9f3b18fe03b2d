package helper

import (
	"math/big"

	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/jackc/pgx/v5/pgtype"
)

const decimalBase = 10

// PgString converts a string to pgtype.Text.
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  true,
	}
}

// PgInt64 converts an int64 to pgtype.Numeric.
func PgInt64(i int64) pgtype.Numeric {
	bigInt := new(big.Int).SetInt64(i)

	return pgtype.Numeric{
		Int:   bigInt,
		Valid: true,
	}
}

// Int64FromPg converts a pgtype.Numeric to an int64.
func Int64FromPg(n pgtype.Numeric) int64 {
	if !n.Valid || n.Int == nil {
		return 0
	}

	if n.Exp != 0 {
		result := new(big.Int).Set(n.Int)

		if n.Exp < 0 {
			divisor := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(int64(-n.Exp)), nil)
			result = result.Div(result, divisor)
		} else {
			multiplier := new(big.Int).Exp(big.NewInt(decimalBase), big.NewInt(int64(n.Exp)), nil)
			result = result.Mul(result, multiplier)
		}

		return result.Int64()
	}

	return n.Int.Int64()
}

// PgUUID converts a string UUID to pgtype.UUID.
func PgUUID(id string) pgtype.UUID {
	var uuid pgtype.UUID

	err := uuid.Scan(id)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}

	return uuid
}

// PgDate converts a string date to pgtype.Date.
func PgDate(date string) pgtype.Date {
	var pgDate pgtype.Date

	err := pgDate.Scan(date)
	if err != nil {
		return pgtype.Date{Valid: false}
	}

	return pgDate
}

// DateFromPg formats a pgtype.Date with the API date layout.
func DateFromPg(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(constant.DateFormat)
}

// TimestampFromPg formats a pgtype.Timestamp as RFC3339.
func TimestampFromPg(t pgtype.Timestamp) string {
	if !t.Valid {
		return ""
	}

	return t.Time.Format(constant.FullDateFormat)
}
