package devhost

import (
	"context"
	"testing"

	"github.com/nanoapp/hostkit/api"
)

func directoryHost(t *testing.T) *DevHost {
	t.Helper()
	return newTestHost(t, Options{
		People: []Person{
			{ID: "u3", Name: "Casey", Department: "dep1"},
			{ID: "u1", Name: "Alex", Department: "dep1"},
			{ID: "u2", Name: "Blair", Department: "dep2"},
		},
		Departments: []Department{
			{ID: "dep2", Name: "Platform"},
			{ID: "dep1", Name: "Apps"},
		},
	})
}

func names(payload map[string]any) []string {
	users, _ := payload["users"].([]map[string]any)
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u["name"].(string))
	}
	return out
}

func TestChooseContactWalksDirectoryInNameOrder(t *testing.T) {
	d := directoryHost(t)
	c := api.New(d)

	payload, err := c.ChooseContact(api.ContactConfig{Multiple: true, MaxUsers: 2}).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := names(payload)
	if len(got) != 2 || got[0] != "Alex" || got[1] != "Blair" {
		t.Fatalf("expected [Alex Blair], got %v", got)
	}
}

func TestChooseContactSkipsDisabledKeepsRequired(t *testing.T) {
	d := directoryHost(t)
	c := api.New(d)

	payload, err := c.ChooseContact(api.ContactConfig{
		Multiple:      true,
		MaxUsers:      2,
		DisabledUsers: []string{"u1"},
		RequiredUsers: []string{"u3"},
	}).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := names(payload)
	if len(got) != 2 || got[0] != "Casey" || got[1] != "Blair" {
		t.Fatalf("expected required first then next enabled, got %v", got)
	}
}

func TestChooseContactSingleDefaultsToOne(t *testing.T) {
	d := directoryHost(t)
	c := api.New(d)

	payload, err := c.ChooseContact(api.ContactConfig{}).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := names(payload); len(got) != 1 {
		t.Fatalf("expected a single pick, got %v", got)
	}
}

func TestChooseDepartments(t *testing.T) {
	d := directoryHost(t)
	c := api.New(d)

	payload, err := c.ChooseDepartments(api.ContactConfig{Multiple: true}).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	deps, _ := payload["departments"].([]map[string]any)
	if len(deps) != 2 || deps[0]["name"] != "Apps" {
		t.Fatalf("expected both departments in name order, got %v", deps)
	}
}

func TestCreateGroupChatMintsID(t *testing.T) {
	d := directoryHost(t)
	c := api.New(d)

	id, err := c.CreateGroupChat(api.GroupChatConfig{Users: []string{"u1", "u2"}, Title: "release"}).Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := id.(string); !ok || s == "" {
		t.Fatalf("expected a non-empty id, got %v", id)
	}
}
