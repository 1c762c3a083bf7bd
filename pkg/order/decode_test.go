package order

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const orderJSON = `{
	"_RowNumber": 7,
	"OrderID": "A-102",
	"Customer Name": "Sam & Co \"Bakers\"",
	"Due Pickup Date": "12/24/2025",
	"Order Total": 42.50,
	"Line Items": [
		{"Product Description": "Cake", "CakeQty": 2, "Writing": "Congrats"},
		{"Product Description": "Croissant", "CakeQty": 12}
	],
	"Notes": ""
}`

func TestRecord_UnmarshalJSON_PreservesFieldOrder(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(orderJSON), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{
		"_RowNumber", "OrderID", "Customer Name", "Due Pickup Date",
		"Order Total", "Line Items", "Notes",
	}
	if diff := cmp.Diff(want, rec.Fields()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_UnmarshalJSON_Values(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(orderJSON), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if rec.RowID() != "7" {
		t.Fatalf("row id %q, want 7", rec.RowID())
	}

	total, _ := rec.Get("Order Total")
	if DisplayString(total) != "42.50" {
		t.Fatalf("total %q, want 42.50 verbatim", DisplayString(total))
	}

	items := rec.LineItems()
	if len(items) != 2 {
		t.Fatalf("want 2 line items, got %d", len(items))
	}
	if items[0].Get("Product Description") != "Cake" || items[0].Get("CakeQty") != "2" {
		t.Fatalf("first item decoded wrong: %v", items[0])
	}
	if items[1].Get("Product Description") != "Croissant" {
		t.Fatalf("second item decoded wrong: %v", items[1])
	}
}

func TestRecord_MarshalJSON_RoundTripsOrder(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(orderJSON), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var again Record
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if diff := cmp.Diff(rec.Fields(), again.Fields()); diff != "" {
		t.Fatalf("field order lost in round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeRecords_Array(t *testing.T) {
	records, err := DecodeRecords([]byte(`[` + orderJSON + `,` + orderJSON + `]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
}

func TestDecodeRecords_RowsEnvelope(t *testing.T) {
	records, err := DecodeRecords([]byte(`{"Rows": [` + orderJSON + `]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].RowID() != "7" {
		t.Fatalf("unexpected records %v", records)
	}
}

func TestDecodeRecords_SingleObject(t *testing.T) {
	records, err := DecodeRecords([]byte(orderJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}
}

func TestDecodeRecords_Invalid(t *testing.T) {
	for _, payload := range []string{"", "   ", "nope", `"just a string"`, `[{"a": }]`} {
		if _, err := DecodeRecords([]byte(payload)); err == nil {
			t.Fatalf("payload %q decoded without error", payload)
		}
	}
}
