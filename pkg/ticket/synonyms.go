package ticket

// The orders-list preview and the printed table read two slightly
// different source schemas, so each context keeps its own ordered
// candidate list. The first candidate with a non-empty value wins. The
// lists are part of the renderer's compatibility contract; do not merge
// them, since merging could change which field wins for existing data.

var (
	previewProductKeys  = []string{"Product Name", "Product", "Item", "Order Details", "Description"}
	previewQuantityKeys = []string{"Qty", "Quantity", "QTY"}

	printProductKeys  = []string{"Product Description"}
	printQuantityKeys = []string{"CakeQty"}
)

// subDetail is one optional labeled sub-line under a printed line item.
type subDetail struct {
	label string
	keys  []string
}

var subDetails = []subDetail{
	{label: "Writing", keys: []string{"Writing", "Cake Writing"}},
	{label: "Color", keys: []string{"Color", "Colour"}},
	{label: "Add-ons", keys: []string{"Add-ons", "Addons", "Add Ons"}},
	{label: "Flavor", keys: []string{"Flavor", "Flavour"}},
	{label: "Notes", keys: []string{"Notes", "Note"}},
}
