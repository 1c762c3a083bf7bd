package ticket

import (
	"strings"

	"github.com/rdawsonsdp/appsheet/pkg/order"
)

// noItemsMessage is the fixed text shown when an order has nothing to
// list.
const noItemsMessage = "No line items."

// LineItemsTable builds the printed table for an order's line items: one
// row per item, in input order, with an empty checkbox cell, a detail cell
// (product plus any labeled sub-lines), and a quantity cell. An absent or
// empty list yields the fixed no-items message instead of a table.
func LineItemsTable(rec order.Record) string {
	items := rec.LineItems()
	if len(items) == 0 {
		return `<p class="no-items">` + escapeHTML(noItemsMessage) + `</p>`
	}

	var b strings.Builder
	b.WriteString(`<table class="line-items">`)
	b.WriteString(`<thead><tr><th class="check"></th><th>Item</th><th class="qty">Qty</th></tr></thead>`)
	b.WriteString(`<tbody>`)
	for _, item := range items {
		b.WriteString(`<tr><td class="check"><input type="checkbox"></td>`)

		b.WriteString(`<td class="detail">`)
		b.WriteString(escapeHTML(item.First(printProductKeys...)))
		for _, detail := range subDetails {
			value := item.First(detail.keys...)
			if value == "" {
				continue
			}
			b.WriteString(`<div class="sub">`)
			b.WriteString(detail.label)
			b.WriteString(": ")
			b.WriteString(escapeHTML(value))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</td>`)

		b.WriteString(`<td class="qty">`)
		b.WriteString(escapeHTML(item.First(printQuantityKeys...)))
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// LineItemSummary returns the one-line preview text for an item, used by
// the orders list: product name and quantity resolved through the
// preview-context candidate lists.
func LineItemSummary(item order.LineItem) string {
	product := item.First(previewProductKeys...)
	qty := item.First(previewQuantityKeys...)
	switch {
	case product == "" && qty == "":
		return ""
	case qty == "":
		return product
	case product == "":
		return "x" + qty
	default:
		return product + " x" + qty
	}
}

// OrderDetails joins an order's line-item summaries for list display.
func OrderDetails(rec order.Record) string {
	items := rec.LineItems()
	summaries := make([]string, 0, len(items))
	for _, item := range items {
		if s := LineItemSummary(item); s != "" {
			summaries = append(summaries, s)
		}
	}
	return strings.Join(summaries, ", ")
}
