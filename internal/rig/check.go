package rig

import (
	"fmt"
	"sort"
	"strings"
)

// CheckType represents the kind of problem a check looks for
type CheckType string

const (
	CheckParent     CheckType = "parent"     // Bone parent names an existing bone
	CheckMembership CheckType = "membership" // Collection members are real bones
	CheckAssigned   CheckType = "assigned"   // Every bone belongs to a collection
	CheckOverlap    CheckType = "overlap"    // No bone sits in two collections
	CheckLayout     CheckType = "layout"     // Collections match the expected layout
)

// CheckResult holds the outcome of one check on an armature
type CheckResult struct {
	Type      CheckType `json:"type"`
	Satisfied bool      `json:"satisfied"`
	Message   string    `json:"message,omitempty"`
}

// Check inspects an armature's bones and collections. When expected is
// non-nil, the current collections are also compared against it by name,
// order and membership; visibility is ignored.
func (o *Object) Check(expected []Collection) []CheckResult {
	if !o.IsArmature() {
		return nil
	}

	bones := make(map[string]bool, len(o.Armature.Bones))
	for _, b := range o.Armature.Bones {
		bones[b.Name] = true
	}

	var dangling []string
	for _, b := range o.Armature.Bones {
		if b.Parent != "" && !bones[b.Parent] {
			dangling = append(dangling, fmt.Sprintf("%s -> %s", b.Name, b.Parent))
		}
	}

	var unknown []string
	count := make(map[string]int, len(bones))
	for _, c := range o.Armature.Collections {
		for _, name := range c.Bones {
			if !bones[name] {
				unknown = append(unknown, fmt.Sprintf("%s in '%s'", name, c.Name))
				continue
			}
			count[name]++
		}
	}

	var unassigned, overlapping []string
	for _, b := range o.Armature.Bones {
		switch n := count[b.Name]; {
		case n == 0:
			unassigned = append(unassigned, b.Name)
		case n > 1:
			overlapping = append(overlapping, b.Name)
		}
	}

	results := []CheckResult{
		listResult(CheckParent, "missing parent", dangling),
		listResult(CheckMembership, "unknown bone", unknown),
		listResult(CheckAssigned, "not in any collection", unassigned),
		listResult(CheckOverlap, "in several collections", overlapping),
	}

	if expected != nil {
		results = append(results, CheckResult{
			Type:      CheckLayout,
			Satisfied: true,
		})
		if diff := layoutDiff(o.Armature.Collections, expected); diff != "" {
			results[len(results)-1].Satisfied = false
			results[len(results)-1].Message = diff
		}
	}

	return results
}

// HasFailures returns true if any result is unsatisfied
func HasFailures(results []CheckResult) bool {
	for _, r := range results {
		if !r.Satisfied {
			return true
		}
	}
	return false
}

func listResult(t CheckType, what string, items []string) CheckResult {
	if len(items) == 0 {
		return CheckResult{Type: t, Satisfied: true}
	}
	return CheckResult{
		Type:    t,
		Message: fmt.Sprintf("%d %s: %s", len(items), what, strings.Join(items, ", ")),
	}
}

// layoutDiff describes how current differs from expected, or returns ""
func layoutDiff(current, expected []Collection) string {
	if len(current) != len(expected) {
		return fmt.Sprintf("%d collections, expected %d", len(current), len(expected))
	}
	for i := range expected {
		if current[i].Name != expected[i].Name {
			return fmt.Sprintf("collection %d is '%s', expected '%s'", i, current[i].Name, expected[i].Name)
		}
		if !sameMembers(current[i].Bones, expected[i].Bones) {
			return fmt.Sprintf("'%s' members differ", expected[i].Name)
		}
	}
	return ""
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
