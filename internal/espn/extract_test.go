package espn

import "testing"

func TestStringifyRendersNumericIDsWithoutDecimals(t *testing.T) {
	// JSON numbers decode to float64; team ids must round-trip cleanly.
	if got := Stringify(float64(282)); got != "282" {
		t.Fatalf("expected 282, got %q", got)
	}
	if got := Stringify(12.5); got != "12.5" {
		t.Fatalf("expected 12.5, got %q", got)
	}
	if got := Stringify("ind"); got != "ind" {
		t.Fatalf("expected ind, got %q", got)
	}
	if got := Stringify(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}
	if got := Stringify(map[string]any{}); got != "" {
		t.Fatalf("expected empty string for non-scalar, got %q", got)
	}
}

func TestExtractHelpersTolerateMissingAndWrongTypes(t *testing.T) {
	m := map[string]any{
		"name":  "Indiana Fever",
		"id":    float64(5),
		"team":  map[string]any{"slug": "indiana-fever"},
		"items": []any{"a", "b"},
	}

	if got := ExtractString(m, "name"); got != "Indiana Fever" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := ExtractString(m, "id"); got != "5" {
		t.Fatalf("unexpected id: %q", got)
	}
	if got := ExtractString(m, "missing"); got != "" {
		t.Fatalf("expected empty string for missing key, got %q", got)
	}
	if got := ExtractString(nil, "name"); got != "" {
		t.Fatalf("expected empty string for nil map, got %q", got)
	}

	if got := ExtractMap(m, "team"); got["slug"] != "indiana-fever" {
		t.Fatalf("unexpected team map: %v", got)
	}
	if got := ExtractMap(m, "name"); len(got) != 0 {
		t.Fatalf("expected empty map for wrong type, got %v", got)
	}

	if got := ExtractArray(m, "items"); len(got) != 2 {
		t.Fatalf("unexpected items: %v", got)
	}
	if got := ExtractArray(m, "team"); len(got) != 0 {
		t.Fatalf("expected empty array for wrong type, got %v", got)
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt(float64(12)); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	if got := ParseInt(" 7 "); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := ParseInt("not-a-number"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ParseInt(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
}

func TestFirstString(t *testing.T) {
	if got := FirstString("", "  ", "Fever", "Pacers"); got != "Fever" {
		t.Fatalf("expected Fever, got %q", got)
	}
	if got := FirstString("", ""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
