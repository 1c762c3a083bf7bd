package ticket

import "testing"

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<b>", "&lt;b&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{`<b>&"x"</b>`, `&lt;b&gt;&amp;&quot;x&quot;&lt;/b&gt;`},
		// An entity already present in the input is escaped again; only
		// entities produced by the later replacements are left alone.
		{"&lt;", "&amp;lt;"},
	}
	for _, tc := range cases {
		if got := escapeHTML(tc.in); got != tc.want {
			t.Fatalf("escapeHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeHTML_NotIdempotent(t *testing.T) {
	once := escapeHTML("<")
	twice := escapeHTML(once)
	if once == twice {
		t.Fatalf("double escaping unexpectedly stable: %q", once)
	}
	if twice != "&amp;lt;" {
		t.Fatalf("double escape = %q, want &amp;lt;", twice)
	}
}
