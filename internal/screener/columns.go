package screener

import (
	"fmt"
	"strings"

	"github.com/nsepulse/nsepulse/internal/ingestion"
)

// RequiredColumns are the seven headers the input file must carry, in the
// canonical NSE bhavcopy naming. Matching is done against normalized
// (trimmed, upper-cased) labels; extra columns are tolerated and passed
// through to the export untouched.
var RequiredColumns = []string{
	"SECURITY",
	"NET_TRDQTY",
	"CLOSE_PRICE",
	"HI_52_WK",
	"LOW_PRICE",
	"HIGH_PRICE",
	"TRADES",
}

// numericColumns are the required columns that must coerce to a number.
// Everything but SECURITY.
var numericColumns = RequiredColumns[1:]

// MissingColumnError reports which required columns the (normalized)
// header lacks. It is fatal: the pipeline produces no partial output.
type MissingColumnError struct {
	Missing []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required columns missing from csv: %s", strings.Join(e.Missing, ", "))
}

// columnIndex maps each required column name to its position in the
// dataset header. If any required column is absent it returns a
// *MissingColumnError listing every missing name.
func columnIndex(ds *ingestion.Dataset) (map[string]int, error) {
	pos := make(map[string]int, len(ds.Columns))
	for i, c := range ds.Columns {
		if _, ok := pos[c]; !ok {
			pos[c] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Missing: missing}
	}
	return pos, nil
}
