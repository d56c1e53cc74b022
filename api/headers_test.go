package api

import (
	"reflect"
	"testing"
)

func TestNormalizeHeadersFoldsList(t *testing.T) {
	raw := []any{
		map[string]any{"A": "1"},
		map[string]any{"B": "2"},
	}
	got := NormalizeHeaders(raw)
	want := map[string]any{"A": "1", "B": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeHeadersLastOccurrenceWins(t *testing.T) {
	raw := []any{
		map[string]any{"A": "1"},
		map[string]any{"A": "2"},
	}
	got := NormalizeHeaders(raw)
	want := map[string]any{"A": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeHeadersSingleMappingPassesThrough(t *testing.T) {
	raw := map[string]any{"Content-Type": "application/json"}
	got := NormalizeHeaders(raw)
	if !reflect.DeepEqual(got, raw) {
		t.Fatalf("expected pass-through, got %v", got)
	}

	// Idempotence: normalizing a normalized value changes nothing.
	again := NormalizeHeaders(got)
	if !reflect.DeepEqual(again, raw) {
		t.Fatalf("expected idempotence, got %v", again)
	}
}

func TestNormalizeHeadersTypedSlices(t *testing.T) {
	got := NormalizeHeaders([]map[string]string{{"A": "1"}, {"B": "2"}})
	want := map[string]any{"A": "1", "B": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeHeadersLeavesOtherShapesAlone(t *testing.T) {
	if got := NormalizeHeaders(nil); got != nil {
		t.Fatalf("expected nil pass-through, got %v", got)
	}
	if got := NormalizeHeaders("x-raw"); got != "x-raw" {
		t.Fatalf("expected scalar pass-through, got %v", got)
	}
}
