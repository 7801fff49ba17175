// SPDX-License-Identifier: MIT

package worklist

import (
	"fmt"
	"sort"
	"strconv"
)

// Column names of the fixed and location columns.
const (
	ColLevel         = "level"
	ColSrcName       = "src_name"
	ColSrcIsReagent  = "src_is_reagent"
	ColSrcIsInput    = "src_is_input"
	ColSrcWell       = "src_well"
	ColDestName      = "dest_name"
	ColDestIsReagent = "dest_is_reagent"
	ColDestWell      = "dest_well"

	ColSourcePlate      = "SourcePlateBarcode"
	ColSourceWell       = "SourcePlateWell"
	ColDestinationPlate = "DestinationPlateBarcode"
	ColDestinationWell  = "DestinationPlateWell"
)

// LocationColumns are always the last four columns, in this order.
var LocationColumns = []string{ColSourcePlate, ColSourceWell, ColDestinationPlate, ColDestinationWell}

// Fields flattens a row: edge attributes, source attributes prefixed
// "src_", destination attributes prefixed "dest_", then the fixed fields,
// later entries winning on name clashes.
func (r Row) Fields() map[string]any {
	out := make(map[string]any, len(r.Edge)+len(r.Src)+len(r.Dest)+8)
	for k, v := range r.Edge {
		out[k] = v
	}
	for k, v := range r.Src {
		out["src_"+k] = v
	}
	for k, v := range r.Dest {
		out["dest_"+k] = v
	}
	out[ColLevel] = r.Level
	out[ColSrcName] = r.SrcName
	out[ColSrcIsReagent] = r.SrcIsReagent
	out[ColSrcIsInput] = r.SrcIsInput
	out[ColSrcWell] = r.SrcWell
	out[ColDestName] = r.DestName
	out[ColDestIsReagent] = r.DestIsReagent
	out[ColDestWell] = r.DestWell

	return out
}

// Columns returns the header: the union of all row fields sorted by name,
// followed by LocationColumns.
func (w *Worklist) Columns() []string {
	seen := make(map[string]struct{})
	for _, r := range w.Rows {
		for k := range r.Fields() {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen)+len(LocationColumns))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	return append(cols, LocationColumns...)
}

// Records renders every row as strings aligned with Columns. Missing
// attributes and unresolved locations render as empty strings.
func (w *Worklist) Records() [][]string {
	cols := w.Columns()
	attrCols := cols[:len(cols)-len(LocationColumns)]

	out := make([][]string, 0, len(w.Rows))
	for _, r := range w.Rows {
		fields := r.Fields()
		rec := make([]string, 0, len(cols))
		for _, c := range attrCols {
			rec = append(rec, FormatValue(fields[c]))
		}
		if r.Resolved {
			rec = append(rec, r.Location.SourcePlate, r.Location.SourceWell,
				r.Location.DestinationPlate, r.Location.DestinationWell)
		} else {
			rec = append(rec, "", "", "", "")
		}
		out = append(out, rec)
	}

	return out
}

// FormatValue renders an attribute value for delimited text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
