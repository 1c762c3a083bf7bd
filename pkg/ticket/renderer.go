package ticket

import (
	"strings"
	"time"

	"github.com/rdawsonsdp/appsheet/pkg/order"
)

// Reserved placeholder keys. Every other key is looked up as an order
// field name, exactly as written after trimming.
const (
	TokenLineItemsTable = "Line Items Table"
	TokenPrintDate      = "Print Date"
)

// defaultDateLayout matches the short date the backend's own date columns
// use.
const defaultDateLayout = "1/2/2006"

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the print-date placeholder.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithDateLayout overrides the print-date format.
func WithDateLayout(layout string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(layout) != "" {
			r.dateLayout = layout
		}
	}
}

// Renderer evaluates ticket templates against order records. The zero
// configuration uses the wall clock and the backend's short date layout;
// everything else about rendering is a pure function of its inputs.
type Renderer struct {
	now        func() time.Time
	dateLayout string
}

// NewRenderer constructs a Renderer applying any provided options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		now:        time.Now,
		dateLayout: defaultDateLayout,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render evaluates the template against one order using the default
// renderer.
func Render(template string, rec order.Record) string {
	return defaultRenderer.Render(template, rec)
}

// Render resolves conditional blocks first, then substitutes placeholders,
// so a kept block's interior placeholders resolve against the same record.
// It never fails: malformed syntax stays literal and unknown fields render
// empty.
func (r *Renderer) Render(template string, rec order.Record) string {
	expanded := resolveConditionals(template, rec)
	return r.substitute(expanded, rec)
}

func resolveConditionals(template string, rec order.Record) string {
	var b strings.Builder
	for _, tok := range scanConditionals(template) {
		switch tok.kind {
		case tokenLiteral:
			b.WriteString(tok.text)
		case tokenConditional:
			value, ok := rec.Get(strings.TrimSpace(tok.text))
			if ok && order.HasContent(value) {
				// Interior is kept raw; its placeholders resolve in the
				// second pass.
				b.WriteString(tok.body)
			}
		}
	}
	return b.String()
}

func (r *Renderer) substitute(template string, rec order.Record) string {
	var b strings.Builder
	for _, tok := range scanPlaceholders(template) {
		if tok.kind == tokenLiteral {
			b.WriteString(tok.text)
			continue
		}

		switch key := strings.TrimSpace(tok.text); key {
		case TokenLineItemsTable:
			b.WriteString(LineItemsTable(rec))
		case TokenPrintDate:
			b.WriteString(r.now().Format(r.dateLayout))
		default:
			value, ok := rec.Get(key)
			if !ok || value == nil {
				continue
			}
			b.WriteString(escapeHTML(displayValue(value)))
		}
	}
	return b.String()
}

// displayValue converts a field value for placeholder output. A line-item
// list prints as the joined preview summaries of its items; scalars use
// their plain display string.
func displayValue(value any) string {
	items, ok := value.([]order.LineItem)
	if !ok {
		return order.DisplayString(value)
	}
	summaries := make([]string, 0, len(items))
	for _, item := range items {
		if s := LineItemSummary(item); s != "" {
			summaries = append(summaries, s)
		}
	}
	return strings.Join(summaries, ", ")
}
