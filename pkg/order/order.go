package order

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Reserved field names used by the backend's order table. LineItemsField
// carries the joined product rows; RowNumberField identifies a row for
// selection but plays no part in rendering.
const (
	LineItemsField = "Line Items"
	RowNumberField = "_RowNumber"
)

// Record is one order's field set. Field iteration order matches the order
// fields were set (for decoded records, document order), which downstream
// consumers rely on for stable catalog output.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]any)}
}

// Set stores a field value, appending the key to the iteration order on
// first use.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the field value and whether the field is present.
func (r Record) Get(key string) (any, bool) {
	if r.values == nil {
		return nil, false
	}
	value, ok := r.values[key]
	return value, ok
}

// Has reports whether the field is present, regardless of its value.
func (r Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Fields returns the field names in iteration order. The returned slice is
// a copy.
func (r Record) Fields() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// LineItems returns the reserved line-items field as a list, or nil when
// the field is absent or holds anything else.
func (r Record) LineItems() []LineItem {
	value, ok := r.Get(LineItemsField)
	if !ok {
		return nil
	}
	items, ok := value.([]LineItem)
	if !ok {
		return nil
	}
	return items
}

// RowID returns the display form of the reserved row-identity field, empty
// when absent.
func (r Record) RowID() string {
	value, ok := r.Get(RowNumberField)
	if !ok {
		return ""
	}
	return DisplayString(value)
}

// LineItem is one product row within an order. Values are scalars.
type LineItem map[string]any

// Get returns the item's display string for key, empty when absent.
func (li LineItem) Get(key string) string {
	value, ok := li[key]
	if !ok {
		return ""
	}
	return DisplayString(value)
}

// First tries candidate keys in order and returns the first present value
// whose display string is non-empty. Returns empty when none match.
func (li LineItem) First(keys ...string) string {
	for _, key := range keys {
		if s := li.Get(key); s != "" {
			return s
		}
	}
	return ""
}

// DisplayString converts a field value to the text shown to users. Numbers
// print without exponent notation or trailing zeros; nil is empty.
func DisplayString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// HasContent reports whether the value's display string contains any
// non-whitespace character. Line-item lists count as content when non-empty.
func HasContent(value any) bool {
	if items, ok := value.([]LineItem); ok {
		return len(items) > 0
	}
	return strings.TrimSpace(DisplayString(value)) != ""
}
