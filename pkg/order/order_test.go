package order

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecord_SetPreservesInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("Zebra", 1)
	rec.Set("Alpha", 2)
	rec.Set("Mango", 3)
	rec.Set("Alpha", 4) // overwrite keeps the original position

	want := []string{"Zebra", "Alpha", "Mango"}
	if diff := cmp.Diff(want, rec.Fields()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	value, ok := rec.Get("Alpha")
	if !ok || value != 4 {
		t.Fatalf("overwrite lost: got %v, %v", value, ok)
	}
}

func TestRecord_GetMissing(t *testing.T) {
	rec := NewRecord()
	if _, ok := rec.Get("Nope"); ok {
		t.Fatal("missing field reported present")
	}
	var zero Record
	if _, ok := zero.Get("Nope"); ok {
		t.Fatal("zero record reported a field present")
	}
}

func TestRecord_LineItems(t *testing.T) {
	rec := NewRecord()
	if rec.LineItems() != nil {
		t.Fatal("absent line items should be nil")
	}

	rec.Set(LineItemsField, "not a list")
	if rec.LineItems() != nil {
		t.Fatal("non-list line items should be nil")
	}

	rec.Set(LineItemsField, []LineItem{{"Product Description": "Cake"}})
	items := rec.LineItems()
	if len(items) != 1 || items[0].Get("Product Description") != "Cake" {
		t.Fatalf("unexpected items %v", items)
	}
}

func TestRecord_RowID(t *testing.T) {
	rec := NewRecord()
	if rec.RowID() != "" {
		t.Fatalf("empty record has row id %q", rec.RowID())
	}
	rec.Set(RowNumberField, json.Number("17"))
	if rec.RowID() != "17" {
		t.Fatalf("row id %q, want 17", rec.RowID())
	}
}

func TestLineItem_First(t *testing.T) {
	item := LineItem{"A": "", "B": "found", "C": "later"}
	if got := item.First("A", "B", "C"); got != "found" {
		t.Fatalf("got %q, want found", got)
	}
	if got := item.First("X", "Y"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestDisplayString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{json.Number("86.50"), "86.50"},
		{float64(86.5), "86.5"},
		{float64(12), "12"},
		{42, "42"},
		{int64(7), "7"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := DisplayString(tc.in); got != tc.want {
			t.Fatalf("DisplayString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasContent(t *testing.T) {
	if HasContent("") || HasContent("   ") || HasContent(nil) {
		t.Fatal("blank values reported as content")
	}
	if !HasContent("x") || !HasContent(0) {
		t.Fatal("non-blank values reported empty")
	}
	if HasContent([]LineItem{}) {
		t.Fatal("empty item list reported as content")
	}
	if !HasContent([]LineItem{{}}) {
		t.Fatal("non-empty item list reported empty")
	}
}
