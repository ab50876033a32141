package classify

import (
	"fmt"
	"strings"
)

// Kind represents how a group was produced
type Kind string

const (
	KindDefault  Kind = "default"  // Catch-all for bones no rule claims
	KindCategory Kind = "category" // One of the fixed "<TOKEN> Bones" groups
	KindJiggle   Kind = "jiggle"   // "<base> Jigglebones", created on demand
	KindDriver   Kind = "driver"   // "<base> Drivers", created on demand
)

// Variant selects the name of the default group
type Variant string

const (
	VariantUncategorized Variant = "uncategorized"
	VariantMain          Variant = "main"
)

const (
	// UncategorizedGroup is the default group for VariantUncategorized
	UncategorizedGroup = "Uncategorized Bones"
	// MainGroup is the default group for VariantMain
	MainGroup = "Main Bones"

	jiggleToken = "JIGGLE"
	driverToken = "DRIVER"
)

// DefaultGroupName returns the default group name for a variant.
// Unknown variants fall back to UncategorizedGroup.
func DefaultGroupName(v Variant) string {
	if v == VariantMain {
		return MainGroup
	}
	return UncategorizedGroup
}

// category is a fixed rule: a bone whose name contains Token goes to Group
type category struct {
	Token string
	Group string
}

// Priority order matters: "AIM_IK" is an AIM bone, not an IK bone.
var categories = []category{
	{Token: "AIM", Group: "AIM Bones"},
	{Token: "SOCKET", Group: "SOCKET Bones"},
	{Token: "EFFECT", Group: "EFFECT Bones"},
	{Token: "IK", Group: "IK Bones"},
	{Token: "UTILITY", Group: "UTILITY Bones"},
	{Token: "HAIR", Group: "HAIR Bones"},
	{Token: "ACCE", Group: "ACCE Bones"},
	{Token: "OBI", Group: "OBI Bones"},
}

// CategoryGroups returns the names of the fixed category groups in creation order
func CategoryGroups() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Group)
	}
	return names
}

// Options controls classification
type Options struct {
	Variant Variant
}

// Group is a named set of bones. Bones keeps input order and holds no duplicates.
type Group struct {
	Name  string   `json:"name" yaml:"name"`
	Kind  Kind     `json:"kind" yaml:"kind"`
	Bones []string `json:"bones" yaml:"bones"`
}

// Grouping is the result of classifying a rig
type Grouping struct {
	Groups  []Group `json:"groups" yaml:"groups"`
	Default string  `json:"default" yaml:"default"`

	index  map[string]int // group name -> position in Groups
	member map[string]int // bone name -> position in Groups
}

// Match describes why a single name landed where it did
type Match struct {
	Name  string `json:"name"`
	Base  string `json:"base,omitempty"` // Set for jiggle and driver matches
	Group string `json:"group"`
	Kind  Kind   `json:"kind"`
	Rule  string `json:"rule"`
}

// Explain applies the classification rules to a single name.
// The first matching rule wins; rules are mutually exclusive.
func Explain(name string, opts Options) Match {
	upper := strings.ToUpper(name)

	if strings.Contains(upper, jiggleToken) {
		base := Normalize(upper)
		return Match{
			Name:  name,
			Base:  base,
			Group: fmt.Sprintf("%s Jigglebones", base),
			Kind:  KindJiggle,
			Rule:  "contains " + jiggleToken,
		}
	}

	if strings.Contains(upper, driverToken) {
		base := Normalize(strings.ReplaceAll(upper, driverToken, jiggleToken))
		return Match{
			Name:  name,
			Base:  base,
			Group: fmt.Sprintf("%s Drivers", base),
			Kind:  KindDriver,
			Rule:  "contains " + driverToken,
		}
	}

	for _, c := range categories {
		// JIGGLE was handled above, so the HAIR rule's "and not JIGGLE"
		// guard always holds here.
		if strings.Contains(upper, c.Token) {
			return Match{
				Name:  name,
				Group: c.Group,
				Kind:  KindCategory,
				Rule:  "contains " + c.Token,
			}
		}
	}

	return Match{
		Name:  name,
		Group: DefaultGroupName(opts.Variant),
		Kind:  KindDefault,
		Rule:  "no match",
	}
}

// Classify assigns every bone to exactly one group.
//
// The default group and the fixed category groups are always present, in
// that order, even when empty. Jigglebone and driver groups follow in the
// order their first bone appears. A name that appears more than once is
// assigned on its first occurrence only.
func Classify(bones []string, opts Options) *Grouping {
	g := newGrouping(DefaultGroupName(opts.Variant))

	for _, bone := range bones {
		if _, seen := g.member[bone]; seen {
			continue
		}
		m := Explain(bone, opts)
		i := g.ensure(m.Group, m.Kind)
		g.Groups[i].Bones = append(g.Groups[i].Bones, bone)
		g.member[bone] = i
	}

	return g
}

func newGrouping(defaultName string) *Grouping {
	g := &Grouping{
		Default: defaultName,
		index:   make(map[string]int),
		member:  make(map[string]int),
	}
	g.ensure(defaultName, KindDefault)
	for _, c := range categories {
		g.ensure(c.Group, KindCategory)
	}
	return g
}

// ensure returns the position of the named group, creating it if needed
func (g *Grouping) ensure(name string, kind Kind) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	g.Groups = append(g.Groups, Group{Name: name, Kind: kind, Bones: []string{}})
	g.index[name] = len(g.Groups) - 1
	return len(g.Groups) - 1
}

// Lookup returns the group a bone was assigned to
func (g *Grouping) Lookup(bone string) (*Group, bool) {
	i, ok := g.member[bone]
	if !ok {
		return nil, false
	}
	return &g.Groups[i], true
}

// Group returns the named group, or nil if it was never created
func (g *Grouping) Group(name string) *Group {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	return &g.Groups[i]
}

// BoneCount returns the number of distinct bones assigned
func (g *Grouping) BoneCount() int {
	return len(g.member)
}

// Populated returns the groups that hold at least one bone
func (g *Grouping) Populated() []Group {
	var out []Group
	for _, grp := range g.Groups {
		if len(grp.Bones) > 0 {
			out = append(out, grp)
		}
	}
	return out
}

// Membership returns group name -> bone names for every group, empty ones included
func (g *Grouping) Membership() map[string][]string {
	out := make(map[string][]string, len(g.Groups))
	for _, grp := range g.Groups {
		out[grp.Name] = append([]string{}, grp.Bones...)
	}
	return out
}
