package order

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSampleYAML parses a YAML fixture describing a single order, keeping
// the document's field order. Used by the CLI to preview tickets without a
// live backend.
func LoadSampleYAML(data []byte) (Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf("order: parse sample: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Record{}, fmt.Errorf("order: parse sample: empty document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Record{}, fmt.Errorf("order: parse sample: expected a mapping at the top level")
	}

	record := NewRecord()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valueNode := root.Content[i+1]

		if keyNode.Value == LineItemsField && valueNode.Kind == yaml.SequenceNode {
			items, err := decodeYAMLItems(valueNode)
			if err != nil {
				return Record{}, err
			}
			record.Set(keyNode.Value, items)
			continue
		}

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return Record{}, fmt.Errorf("order: parse sample field %q: %w", keyNode.Value, err)
		}
		record.Set(keyNode.Value, value)
	}
	return record, nil
}

func decodeYAMLItems(seq *yaml.Node) ([]LineItem, error) {
	items := make([]LineItem, 0, len(seq.Content))
	for _, node := range seq.Content {
		var row map[string]any
		if err := node.Decode(&row); err != nil {
			return nil, fmt.Errorf("order: parse sample line item: %w", err)
		}
		items = append(items, LineItem(row))
	}
	return items, nil
}
