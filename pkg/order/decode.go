package order

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes an order object preserving the document's field
// order. Numbers decode as json.Number so quantities round-trip without
// float formatting artifacts. A nested object array under the reserved
// line-items field decodes to []LineItem.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("order: decode record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("order: decode record: expected object, got %v", tok)
	}

	*r = NewRecord()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("order: decode record key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("order: decode record key: unexpected token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("order: decode field %q: %w", key, err)
		}

		value, err := decodeFieldValue(key, raw)
		if err != nil {
			return err
		}
		r.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("order: decode record close: %w", err)
	}
	return nil
}

func decodeFieldValue(key string, raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if key == LineItemsField && len(trimmed) > 0 && trimmed[0] == '[' {
		items, err := decodeLineItems(trimmed)
		if err != nil {
			return nil, fmt.Errorf("order: decode %q: %w", key, err)
		}
		return items, nil
	}

	var value any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("order: decode field %q: %w", key, err)
	}
	return value, nil
}

func decodeLineItems(raw json.RawMessage) ([]LineItem, error) {
	var rows []map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, LineItem(row))
	}
	return items, nil
}

// MarshalJSON encodes the record's fields in iteration order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("order: encode key %q: %w", key, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("order: encode field %q: %w", key, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeRecords parses a backend response body. The backend normally
// returns a bare JSON array of order objects; some deployments wrap the
// rows in an envelope object, and a single object is treated as one row.
func DecodeRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("order: decode records: empty response")
	}

	switch trimmed[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("order: decode records: %w", err)
		}
		return records, nil
	case '{':
		if rows, ok, err := unwrapRows(trimmed); ok {
			return rows, err
		}
		var record Record
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return nil, fmt.Errorf("order: decode records: %w", err)
		}
		return []Record{record}, nil
	default:
		return nil, fmt.Errorf("order: decode records: unexpected payload")
	}
}

func unwrapRows(data []byte) ([]Record, bool, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false, fmt.Errorf("order: decode records: %w", err)
	}
	for _, key := range []string{"Rows", "rows", "data"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		inner := bytes.TrimSpace(raw)
		if len(inner) == 0 || inner[0] != '[' {
			continue
		}
		var records []Record
		if err := json.Unmarshal(inner, &records); err != nil {
			return nil, true, fmt.Errorf("order: decode records: %w", err)
		}
		return records, true, nil
	}
	return nil, false, nil
}
