package ticket

import "github.com/rdawsonsdp/appsheet/pkg/order"

// previewMaxLen caps catalog preview text. No ellipsis is added.
const previewMaxLen = 40

// CatalogEntry is one insertable placeholder offered to template authors:
// the key to insert and a short preview of its current value.
type CatalogEntry struct {
	Key     string `json:"key"`
	Preview string `json:"preview"`
}

// BuildFieldCatalog derives the insert-field helper entries from a sample
// order: every record field in its natural order (the reserved line-items
// field excluded), followed by the two synthetic entries for the
// line-items table and the print date, always in that order. The ordering
// is a contract the helper UI relies on.
func BuildFieldCatalog(rec order.Record) []CatalogEntry {
	entries := make([]CatalogEntry, 0, rec.Len()+2)
	for _, key := range rec.Fields() {
		if key == order.LineItemsField {
			continue
		}
		value, _ := rec.Get(key)
		entries = append(entries, CatalogEntry{
			Key:     key,
			Preview: truncate(order.DisplayString(value), previewMaxLen),
		})
	}
	return append(entries,
		CatalogEntry{Key: TokenLineItemsTable, Preview: "Table of this order's line items"},
		CatalogEntry{Key: TokenPrintDate, Preview: "Today's date at print time"},
	)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
