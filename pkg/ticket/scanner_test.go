package ticket

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var tokenCmp = []cmp.Option{
	cmp.AllowUnexported(token{}),
	cmpopts.EquateEmpty(),
}

func TestScanConditionals(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token
	}{
		{
			name: "no blocks",
			src:  "plain {{Name}} text",
			want: []token{{kind: tokenLiteral, text: "plain {{Name}} text"}},
		},
		{
			name: "single block",
			src:  "a{{#S}}body{{/S}}b",
			want: []token{
				{kind: tokenLiteral, text: "a"},
				{kind: tokenConditional, text: "S", body: "body"},
				{kind: tokenLiteral, text: "b"},
			},
		},
		{
			name: "raw name must match exactly",
			src:  "{{# S }}x{{/ S }}",
			want: []token{
				{kind: tokenConditional, text: " S ", body: "x"},
			},
		},
		{
			name: "close with different spacing is not a match",
			src:  "{{#S}}x{{/ S}}",
			want: []token{
				{kind: tokenLiteral, text: "{{#S}}"},
				{kind: tokenLiteral, text: "x{{/ S}}"},
			},
		},
		{
			name: "unterminated opener stays literal",
			src:  "{{#S}}x",
			want: []token{
				{kind: tokenLiteral, text: "{{#S}}"},
				{kind: tokenLiteral, text: "x"},
			},
		},
		{
			name: "opener without closing braces stays literal",
			src:  "{{#S x",
			want: []token{
				{kind: tokenLiteral, text: "{"},
				{kind: tokenLiteral, text: "{#S x"},
			},
		},
		{
			name: "interior is matched non-greedily",
			src:  "{{#S}}a{{/S}}b{{/S}}",
			want: []token{
				{kind: tokenConditional, text: "S", body: "a"},
				{kind: tokenLiteral, text: "b{{/S}}"},
			},
		},
		{
			name: "second opener before close lands in the interior",
			src:  "{{#A}}one{{#A}}two{{/A}}",
			want: []token{
				{kind: tokenConditional, text: "A", body: "one{{#A}}two"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scanConditionals(tc.src)
			if diff := cmp.Diff(tc.want, got, tokenCmp...); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanPlaceholders(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token
	}{
		{
			name: "literal only",
			src:  "no tokens here",
			want: []token{{kind: tokenLiteral, text: "no tokens here"}},
		},
		{
			name: "placeholder between literals",
			src:  "a{{Key}}b",
			want: []token{
				{kind: tokenLiteral, text: "a"},
				{kind: tokenPlaceholder, text: "Key"},
				{kind: tokenLiteral, text: "b"},
			},
		},
		{
			name: "key keeps raw whitespace",
			src:  "{{ Key }}",
			want: []token{{kind: tokenPlaceholder, text: " Key "}},
		},
		{
			name: "single closing brace is not a placeholder",
			src:  "{{Key}",
			want: []token{
				{kind: tokenLiteral, text: "{"},
				{kind: tokenLiteral, text: "{Key}"},
			},
		},
		{
			name: "adjacent placeholders",
			src:  "{{A}}{{B}}",
			want: []token{
				{kind: tokenPlaceholder, text: "A"},
				{kind: tokenPlaceholder, text: "B"},
			},
		},
		{
			name: "empty key",
			src:  "{{}}",
			want: []token{{kind: tokenPlaceholder, text: ""}},
		},
		{
			name: "leftover block tags scan as placeholders",
			src:  "{{#A}}x{{/A}}",
			want: []token{
				{kind: tokenPlaceholder, text: "#A"},
				{kind: tokenLiteral, text: "x"},
				{kind: tokenPlaceholder, text: "/A"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scanPlaceholders(tc.src)
			if diff := cmp.Diff(tc.want, got, tokenCmp...); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
