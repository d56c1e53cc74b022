package api

import (
	"context"
	"reflect"
	"testing"
)

func TestGetStorageProjectsDataField(t *testing.T) {
	h := newFakeHost()
	h.succeed["getStorage"] = map[string]any{"data": map[string]any{"theme": "dark"}}
	c := New(h)

	got, err := c.GetStorage("settings").Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"theme": "dark"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGetStorageAbsentKeyPassesNullThrough(t *testing.T) {
	h := newFakeHost()
	h.succeed["getStorage"] = map[string]any{"data": nil}
	c := New(h)

	got, err := c.GetStorage("missing").Await(context.Background())
	if err != nil {
		t.Fatalf("an absent key is not a failure: %v", err)
	}
	if got != nil {
		t.Fatalf("expected the host's null marker untouched, got %v", got)
	}
}

func TestSetStorageForwardsKeyAndData(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.SetStorage("settings", map[string]any{"theme": "dark"})

	call := h.last(t)
	if call.op != "setStorage" || call.params["key"] != "settings" {
		t.Fatalf("unexpected call %q %v", call.op, call.params)
	}
}

func TestSyncStorageVariantsReturnDirectValues(t *testing.T) {
	h := newFakeHost()
	h.syncRet["getStorageSync"] = "cached"
	c := New(h)

	if got := c.GetStorageSync("k"); got != "cached" {
		t.Fatalf("expected direct host value, got %v", got)
	}

	c.SetStorageSync("k", 1)
	c.RemoveStorageSync("k")
	c.ClearStorageSync()

	ops := make([]string, 0, len(h.calls))
	for _, call := range h.calls {
		ops = append(ops, call.op)
	}
	want := []string{"getStorageSync", "setStorageSync", "removeStorageSync", "clearStorageSync"}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("expected %v, got %v", want, ops)
	}
}
