package screener

import (
	"testing"

	"github.com/nsepulse/nsepulse/internal/ingestion"
)

func TestParseCell_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{name: "plain integer", raw: "15000", want: 15000, ok: true},
		{name: "decimal", raw: "95.25", want: 95.25, ok: true},
		{name: "surrounding whitespace", raw: "  42 ", want: 42, ok: true},
		{name: "thousands separators", raw: "3,000,000", want: 3000000, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "whitespace only", raw: "   ", ok: false},
		{name: "text", raw: "N/A", ok: false},
		{name: "nan", raw: "NaN", ok: false},
		{name: "infinity", raw: "+Inf", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseCell(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok: want %v got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("value: want %v got %v", tc.want, got)
			}
		})
	}
}

func TestCoerceRows_DroppedIdentifiers(t *testing.T) {
	ds := &ingestion.Dataset{
		Columns: append([]string(nil), RequiredColumns...),
		Rows: [][]string{
			{"GOOD", "3000000", "95", "100", "93", "96", "15000"},
			{"BADQTY", "abc", "95", "100", "93", "96", "15000"},
			{"BLANK", "3000000", "", "100", "93", "96", "15000"},
			{"", "3000000", "95", "100", "93", "96", "15000"}, // blank SECURITY
			{"ZEROHI", "3000000", "95", "0", "93", "96", "15000"},
			{"ZEROCLOSE", "3000000", "0", "100", "93", "96", "15000"},
		},
	}

	pos, err := columnIndex(ds)
	if err != nil {
		t.Fatalf("column index: %v", err)
	}

	rows, dropped := coerceRows(ds, pos)
	if len(rows) != 1 || rows[0].Security != "GOOD" {
		t.Fatalf("unexpected survivors: %+v", rows)
	}

	want := []string{"BADQTY", "BLANK", "row 4", "ZEROHI", "ZEROCLOSE"}
	if len(dropped) != len(want) {
		t.Fatalf("dropped: want %v got %v", want, dropped)
	}
	for i := range want {
		if dropped[i] != want[i] {
			t.Fatalf("dropped[%d]: want %q got %q", i, want[i], dropped[i])
		}
	}
}

// Extra columns survive coercion untouched, even when they hold
// non-numeric text.
func TestCoerceRows_PassthroughColumns(t *testing.T) {
	ds := &ingestion.Dataset{
		Columns: []string{"SECURITY", "SERIES", "NET_TRDQTY", "CLOSE_PRICE", "HI_52_WK", "LOW_PRICE", "HIGH_PRICE", "TRADES", "ISIN"},
		Rows: [][]string{
			{"FOO", "EQ", "3000000", "95", "100", "93", "96", "15000", "INE002A01018"},
		},
	}

	pos, err := columnIndex(ds)
	if err != nil {
		t.Fatalf("column index: %v", err)
	}

	rows, dropped := coerceRows(ds, pos)
	if len(dropped) != 0 {
		t.Fatalf("unexpected drops: %v", dropped)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0].Extra["SERIES"] != "EQ" || rows[0].Extra["ISIN"] != "INE002A01018" {
		t.Fatalf("passthrough lost: %+v", rows[0].Extra)
	}
	if _, ok := rows[0].Extra["SECURITY"]; ok {
		t.Fatalf("required column leaked into Extra")
	}
}

// A blank cell in a passthrough column still drops the whole row: the
// missing-value drop is blanket, not limited to the numeric columns.
func TestCoerceRows_BlankExtraColumnDropsRow(t *testing.T) {
	ds := &ingestion.Dataset{
		Columns: []string{"SECURITY", "SERIES", "NET_TRDQTY", "CLOSE_PRICE", "HI_52_WK", "LOW_PRICE", "HIGH_PRICE", "TRADES"},
		Rows: [][]string{
			{"FOO", "", "3000000", "95", "100", "93", "96", "15000"},
		},
	}

	pos, err := columnIndex(ds)
	if err != nil {
		t.Fatalf("column index: %v", err)
	}

	rows, dropped := coerceRows(ds, pos)
	if len(rows) != 0 {
		t.Fatalf("row with blank extra cell should drop, got %+v", rows)
	}
	if len(dropped) != 1 || dropped[0] != "FOO" {
		t.Fatalf("unexpected dropped list: %v", dropped)
	}
}
