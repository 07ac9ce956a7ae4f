// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

// Column is the literal header text of a manifest column. Headers are matched
// exactly, without trimming or normalization.
type Column string

const (
	ColumnHijriYear     Column = "السنة الهجرية"
	ColumnHijriMonth    Column = "الشهر الهجري"
	ColumnCouncilNumber Column = "رقم المجلس"
)

// Columns lists the columns a record is built from, in key order.
var Columns = []Column{ColumnHijriYear, ColumnHijriMonth, ColumnCouncilNumber}

// columnIndex maps each Column to its position in header, or -1 when absent.
// A repeated header name resolves to its last occurrence.
func columnIndex(header []string) map[Column]int {
	idx := make(map[Column]int, len(Columns))
	for _, c := range Columns {
		idx[c] = -1
	}
	for i, name := range header {
		c := Column(name)
		if _, ok := idx[c]; ok {
			idx[c] = i
		}
	}
	return idx
}
