package order

// FallbackSample returns the built-in sample order used whenever the
// backend is unreachable or returns no rows. Previews and the field helper
// always have a record to work against.
func FallbackSample() Record {
	rec := NewRecord()
	rec.Set(RowNumberField, "2")
	rec.Set("OrderID", "SAMPLE-0001")
	rec.Set("Customer Name", "Jane Dough")
	rec.Set("Phone", "555-0134")
	rec.Set("Due Pickup Date", "12/24/2025")
	rec.Set("Pickup Time", "10:30 AM")
	rec.Set("Status", "Confirmed")
	rec.Set("Order Total", 86.5)
	rec.Set("Notes", "Call when ready, side door after 9")
	rec.Set(LineItemsField, []LineItem{
		{
			"Product Description": `Chocolate Fudge Cake 8"`,
			"CakeQty":             1,
			"Writing":             "Happy Birthday Maya!",
			"Color":               "Pink & Gold",
			"Flavor":              "Chocolate",
		},
		{
			"Product Description": "Butter Croissant",
			"CakeQty":             12,
		},
		{
			"Product Description": "Sourdough Boule",
			"CakeQty":             2,
			"Notes":               "Sliced",
		},
	})
	return rec
}
