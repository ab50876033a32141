package rig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkRig() *Object {
	return &Object{
		Name: "Rig",
		Type: TypeArmature,
		Armature: &Armature{
			Bones: []Bone{
				{Name: "ROOT"},
				{Name: "SPINE", Parent: "ROOT"},
				{Name: "ARM_IK_L", Parent: "SPINE"},
			},
			Collections: []Collection{
				{Name: "Uncategorized Bones", Visible: true, Bones: []string{"ROOT", "SPINE"}},
				{Name: "IK Bones", Bones: []string{"ARM_IK_L"}},
			},
		},
	}
}

func resultFor(t *testing.T, results []CheckResult, typ CheckType) CheckResult {
	t.Helper()
	for _, r := range results {
		if r.Type == typ {
			return r
		}
	}
	t.Fatalf("no %s result in %v", typ, results)
	return CheckResult{}
}

func TestCheck_Healthy(t *testing.T) {
	obj := checkRig()
	expected := []Collection{
		{Name: "Uncategorized Bones", Bones: []string{"SPINE", "ROOT"}},
		{Name: "IK Bones", Visible: true, Bones: []string{"ARM_IK_L"}},
	}

	results := obj.Check(expected)
	require.Len(t, results, 5)
	assert.False(t, HasFailures(results), "results: %+v", results)
}

func TestCheck_Problems(t *testing.T) {
	obj := checkRig()
	obj.Armature.Bones = append(obj.Armature.Bones, Bone{Name: "TAIL", Parent: "HIPS"})
	obj.Armature.Collections[1].Bones = append(obj.Armature.Collections[1].Bones, "SPINE", "GHOST")

	results := obj.Check(nil)
	require.Len(t, results, 4, "layout check runs only with an expected layout")
	assert.True(t, HasFailures(results))

	assert.Equal(t, "1 missing parent: TAIL -> HIPS", resultFor(t, results, CheckParent).Message)
	assert.Equal(t, "1 unknown bone: GHOST in 'IK Bones'", resultFor(t, results, CheckMembership).Message)
	assert.Equal(t, "1 not in any collection: TAIL", resultFor(t, results, CheckAssigned).Message)
	assert.Equal(t, "1 in several collections: SPINE", resultFor(t, results, CheckOverlap).Message)
}

func TestCheck_LayoutDrift(t *testing.T) {
	tests := []struct {
		name     string
		expected []Collection
		want     string
	}{
		{
			name:     "count",
			expected: []Collection{{Name: "Uncategorized Bones"}},
			want:     "2 collections, expected 1",
		},
		{
			name: "order",
			expected: []Collection{
				{Name: "IK Bones", Bones: []string{"ARM_IK_L"}},
				{Name: "Uncategorized Bones", Bones: []string{"ROOT", "SPINE"}},
			},
			want: "collection 0 is 'Uncategorized Bones', expected 'IK Bones'",
		},
		{
			name: "members",
			expected: []Collection{
				{Name: "Uncategorized Bones", Bones: []string{"ROOT"}},
				{Name: "IK Bones", Bones: []string{"ARM_IK_L", "SPINE"}},
			},
			want: "'Uncategorized Bones' members differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resultFor(t, checkRig().Check(tt.expected), CheckLayout)
			assert.False(t, r.Satisfied)
			assert.Equal(t, tt.want, r.Message)
		})
	}
}

func TestCheck_NotArmature(t *testing.T) {
	obj := &Object{Name: "Body", Type: TypeMesh}
	assert.Nil(t, obj.Check(nil))
}
