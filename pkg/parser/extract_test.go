package parser

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, raw string) json.RawMessage {
	t.Helper()
	out, ok := Parse(raw)
	if !ok {
		t.Fatalf("expected recoverable JSON in %q", raw)
	}
	return out
}

func asValue(t *testing.T, raw json.RawMessage) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("recovered text is not valid JSON: %v", err)
	}
	return v
}

func TestParseStrictJSON(t *testing.T) {
	cases := []string{
		`{"a":1,"b":[2,3]}`,
		`[1,2,3]`,
		`42`,
		`"just a string"`,
		`{"nested":{"deep":{"x":true}}}`,
	}
	for _, tc := range cases {
		out := mustParse(t, tc)
		var want, got any
		if err := json.Unmarshal([]byte(tc), &want); err != nil {
			t.Fatal(err)
		}
		got = asValue(t, out)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("strict parse mismatch for %q: got %v want %v", tc, got, want)
		}
	}
}

func TestParseRecoverFromProse(t *testing.T) {
	obj := `{"scenario_summary":"AI email responder","questions_asked":[]}`
	cases := []string{
		"Here is the result you asked for:\n" + obj + "\nLet me know if you need more.",
		"Sure! " + obj,
		obj + " Hope that helps.",
	}
	var want any
	if err := json.Unmarshal([]byte(obj), &want); err != nil {
		t.Fatal(err)
	}
	for _, tc := range cases {
		got := asValue(t, mustParse(t, tc))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("prose recovery mismatch for %q", tc)
		}
	}
}

func TestParseRecoverFromFence(t *testing.T) {
	raw := "The calculation is below.\n\n```json\n{\"per_unit\": 2.5, \"total\": 100}\n```\n\nAssumptions were applied."
	got := asValue(t, mustParse(t, raw))
	want := map[string]any{"per_unit": 2.5, "total": 100.0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fence recovery mismatch: got %v", got)
	}
}

func TestParseBracesInsideStrings(t *testing.T) {
	raw := `noise {"summary":"use {curly} braces","note":"} tricky {"} trailing`
	got := asValue(t, mustParse(t, raw))
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", got)
	}
	if m["summary"] != "use {curly} braces" {
		t.Fatalf("object truncated early: %v", m)
	}
	if m["note"] != "} tricky {" {
		t.Fatalf("unexpected note: %v", m["note"])
	}
}

func TestParseEscapedQuotesInsideStrings(t *testing.T) {
	raw := `prefix {"text":"she said \"hi {\" and left"} suffix`
	got := asValue(t, mustParse(t, raw))
	m := got.(map[string]any)
	if m["text"] != `she said "hi {" and left` {
		t.Fatalf("escape handling broke the scan: %v", m["text"])
	}
}

func TestParseRepairsSloppyJSON(t *testing.T) {
	raw := "```\n{name: 'calc', total: 10,}\n```"
	got := asValue(t, mustParse(t, raw))
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected object after repair, got %T", got)
	}
	if m["name"] != "calc" {
		t.Fatalf("unexpected repaired object: %v", m)
	}
}

func TestParseUnrecoverable(t *testing.T) {
	cases := []string{
		"",
		"   \n\t  ",
		"not json at all",
		"{unterminated",
		"```\nstill not json\n```",
	}
	for _, tc := range cases {
		if out, ok := Parse(tc); ok {
			t.Fatalf("expected no recovery for %q, got %s", tc, out)
		}
	}
}

func TestExtractObjectBalanced(t *testing.T) {
	in := `a {"x": {"y": 1}} b {"z": 2}`
	got, ok := extractObject(in)
	if !ok || got != `{"x": {"y": 1}}` {
		t.Fatalf("unexpected extraction: %q ok=%v", got, ok)
	}
}
