package rig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `active: Body
objects:
  - name: Rig
    type: ARMATURE
    armature:
      pose_position: POSE
      bones:
        - name: SPINE_01
        - name: SHIRT_JIGGLE_L1
          parent: SPINE_01
      collections:
        - name: Old
          visible: true
          bones: [SPINE_01, SHIRT_JIGGLE_L1]
  - name: Body
    type: MESH
    parent: Rig
  - name: Prop
    type: EMPTY
    selected: true
`

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	scene, err := Load(writeScene(t, "scene.yaml", sceneYAML))
	require.NoError(t, err)

	require.Len(t, scene.Objects, 3)
	rigObj := scene.Object("Rig")
	require.NotNil(t, rigObj)
	assert.True(t, rigObj.IsArmature())
	assert.Equal(t, []string{"SPINE_01", "SHIRT_JIGGLE_L1"}, rigObj.ListBones())
	assert.Equal(t, "SPINE_01", rigObj.Armature.Bones[1].Parent)
	assert.Equal(t, []string{"Old"}, rigObj.CollectionsOf("SPINE_01"))
}

func TestSaveAndLoad_JSON(t *testing.T) {
	scene, err := Load(writeScene(t, "scene.yml", sceneYAML))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, Save(out, scene))

	loaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, scene, loaded)
}

func TestSave_NoTempLeftovers(t *testing.T) {
	scene, err := Load(writeScene(t, "scene.yaml", sceneYAML))
	require.NoError(t, err)

	dir := t.TempDir()
	out := filepath.Join(dir, "out.yaml")
	for i := 0; i < 3; i++ {
		require.NoError(t, Save(out, scene))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.yaml", entries[0].Name())
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "scene.blend"), &Scene{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.yaml", want: FormatYAML},
		{path: "a.YML", want: FormatYAML},
		{path: "dir/a.json", want: FormatJSON},
		{path: "a.blend", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name: "duplicate bone",
			content: `objects:
  - name: Rig
    type: ARMATURE
    armature:
      bones: [{name: A}, {name: A}]`,
			wantMsg: "duplicate",
		},
		{
			name: "duplicate object",
			content: `objects:
  - {name: X, type: MESH}
  - {name: X, type: EMPTY}`,
			wantMsg: "duplicate",
		},
		{
			name: "armature without data",
			content: `objects:
  - {name: Rig, type: ARMATURE}`,
			wantMsg: "required",
		},
		{
			name: "data on a mesh",
			content: `objects:
  - name: Body
    type: MESH
    armature: {bones: []}`,
			wantMsg: "has armature data",
		},
		{
			name: "unknown active",
			content: `active: Ghost
objects:
  - {name: Body, type: MESH}`,
			wantMsg: "active object 'Ghost' not found",
		},
		{
			name: "bad pose position",
			content: `objects:
  - name: Rig
    type: ARMATURE
    armature: {pose_position: SIDEWAYS, bones: []}`,
			wantMsg: "must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.content), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestResolveArmature(t *testing.T) {
	armature := func(name string, selected bool) Object {
		return Object{Name: name, Type: TypeArmature, Selected: selected, Armature: &Armature{}}
	}

	tests := []struct {
		name  string
		scene Scene
		want  string
	}{
		{
			name:  "active armature",
			scene: Scene{Active: "A", Objects: []Object{armature("A", false), armature("B", true)}},
			want:  "A",
		},
		{
			name: "parent of active mesh",
			scene: Scene{Active: "Body", Objects: []Object{
				armature("B", true),
				armature("A", false),
				{Name: "Body", Type: TypeMesh, Parent: "A"},
			}},
			want: "A",
		},
		{
			name: "first selected armature",
			scene: Scene{Active: "Body", Objects: []Object{
				armature("A", false),
				armature("B", true),
				armature("C", true),
				{Name: "Body", Type: TypeMesh},
			}},
			want: "B",
		},
		{
			name:  "nothing active",
			scene: Scene{Objects: []Object{armature("A", true)}},
			want:  "A",
		},
		{
			name:  "no armature",
			scene: Scene{Active: "Body", Objects: []Object{{Name: "Body", Type: TypeMesh}}},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scene.ResolveArmature()
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestActiveArmature(t *testing.T) {
	scene := Scene{Active: "Body", Objects: []Object{
		{Name: "Rig", Type: TypeArmature, Armature: &Armature{}},
		{Name: "Body", Type: TypeMesh, Parent: "Rig"},
	}}
	assert.Nil(t, scene.ActiveArmature(), "a mesh parented to a rig is not an active armature")

	scene.Active = "Rig"
	require.NotNil(t, scene.ActiveArmature())
	assert.Equal(t, "Rig", scene.ActiveArmature().RigName())

	scene.Active = ""
	assert.Nil(t, scene.ActiveArmature())
	assert.Len(t, scene.Armatures(), 1)
}

func TestSetCollections(t *testing.T) {
	obj := &Object{Name: "Rig", Type: TypeArmature, Armature: &Armature{
		Bones: []Bone{{Name: "A"}, {Name: "B"}},
		Collections: []Collection{
			{Name: "Old", Visible: true, Bones: []string{"A", "B"}},
		},
	}}

	err := obj.SetCollections([]Collection{
		{Name: "First", Visible: true, Bones: []string{"A"}},
		{Name: "Second", Bones: []string{"B"}},
		{Name: "Empty"},
	})
	require.NoError(t, err)

	require.Len(t, obj.Armature.Collections, 3)
	assert.Equal(t, []string{"First"}, obj.CollectionsOf("A"))
	assert.Equal(t, []string{"Second"}, obj.CollectionsOf("B"))
	assert.False(t, obj.Armature.Collections[1].Visible)

	t.Run("unknown bone", func(t *testing.T) {
		err := obj.SetCollections([]Collection{{Name: "X", Bones: []string{"Z"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown bone 'Z'")
		assert.Len(t, obj.Armature.Collections, 3, "failed call must not mutate")
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := obj.SetCollections([]Collection{{Name: "X"}, {Name: "X"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate collection")
	})

	t.Run("no armature data", func(t *testing.T) {
		mesh := &Object{Name: "Body", Type: TypeMesh}
		assert.Error(t, mesh.SetCollections(nil))
	})
}

func TestPosition(t *testing.T) {
	obj := &Object{Name: "Rig", Type: TypeArmature, Armature: &Armature{}}
	assert.Equal(t, PosePose, obj.Position(), "empty pose position reads as POSE")

	obj.SetPosition(PoseRest)
	assert.Equal(t, PoseRest, obj.Position())
}
