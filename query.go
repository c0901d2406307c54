package screener

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates the JSONPath expression 'expr' against 'records'.
//
// Records are seen as a JSON array of objects, with the same keys and values as
// in a JSON export. For instance:
//
//	$[?(@.sector == "Tech")].bedrijf
//
// returns the names of all Tech records.
func Query(records []Record, expr string) (any, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal records: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot unmarshal records: %w", err)
	}

	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return v, nil
}
