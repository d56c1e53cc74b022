package devhost

import (
	"fmt"
	"sync/atomic"
)

// Person is one entry in the devhost's contact directory.
type Person struct {
	ID         string
	Name       string
	Department string
	Avatar     string
}

type Department struct {
	ID   string
	Name string
}

func byPersonName(a, b Person) bool {
	if a.Name == b.Name {
		return a.ID < b.ID
	}
	return a.Name < b.Name
}

func byDepartmentName(a, b Department) bool {
	if a.Name == b.Name {
		return a.ID < b.ID
	}
	return a.Name < b.Name
}

func (p Person) payload() map[string]any {
	m := map[string]any{
		"emplId": p.ID,
		"name":   p.Name,
	}
	if p.Avatar != "" {
		m["avatar"] = p.Avatar
	}
	return m
}

// pickUsers is the unscripted picker outcome: walk the directory in name
// order, skip disabled entries, keep required ones first, stop at the
// limit.
func (d *DevHost) pickUsers(params map[string]any) (map[string]any, error) {
	limit := asInt(params["maxUsers"])
	multiple, _ := params["multiple"].(bool)
	if limit <= 0 {
		if multiple {
			limit = d.people.Len()
		} else {
			limit = 1
		}
	}

	disabled := make(map[string]struct{})
	for _, id := range asStringSlice(params["disabledUsers"]) {
		disabled[id] = struct{}{}
	}
	required := asStringSlice(params["requiredUsers"])

	picked := make([]map[string]any, 0, limit)
	seen := make(map[string]struct{})
	d.people.Scan(func(p Person) bool {
		for _, id := range required {
			if p.ID == id {
				picked = append(picked, p.payload())
				seen[p.ID] = struct{}{}
			}
		}
		return true
	})
	d.people.Scan(func(p Person) bool {
		if len(picked) >= limit {
			return false
		}
		if _, ok := disabled[p.ID]; ok {
			return true
		}
		if _, ok := seen[p.ID]; ok {
			return true
		}
		picked = append(picked, p.payload())
		return true
	})

	return map[string]any{"users": picked}, nil
}

func (d *DevHost) pickDepartments(params map[string]any) (map[string]any, error) {
	multiple, _ := params["multiple"].(bool)

	picked := make([]map[string]any, 0, d.depts.Len())
	d.depts.Scan(func(dep Department) bool {
		picked = append(picked, map[string]any{"id": dep.ID, "name": dep.Name})
		return multiple || len(picked) < 1
	})
	return map[string]any{"departments": picked}, nil
}

var chatSeq atomic.Uint64

func (d *DevHost) createGroupChat(params map[string]any) (map[string]any, error) {
	users := asStringSlice(params["users"])
	id := fmt.Sprintf("chat-%d", chatSeq.Add(1))
	return map[string]any{
		"id":    id,
		"users": users,
	}, nil
}
