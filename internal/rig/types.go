// Package rig models the scene a rig lives in: objects, armatures, bones,
// and the bone collections that group them.
package rig

// ObjectType represents the kind of scene object
type ObjectType string

const (
	TypeArmature ObjectType = "ARMATURE"
	TypeMesh     ObjectType = "MESH"
	TypeEmpty    ObjectType = "EMPTY"
)

// PosePosition selects whether an armature shows its pose or its rest position
type PosePosition string

const (
	PosePose PosePosition = "POSE"
	PoseRest PosePosition = "REST"
)

// Bone is a named node within an armature
type Bone struct {
	Name   string `yaml:"name" json:"name" validate:"required"`
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`
}

// Collection is a named, user-visible set of bones
type Collection struct {
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Visible bool     `yaml:"visible" json:"visible"`
	Bones   []string `yaml:"bones,omitempty" json:"bones,omitempty"`
}

// Armature holds the skeleton data of an ARMATURE object
type Armature struct {
	Pose        PosePosition `yaml:"pose_position,omitempty" json:"pose_position,omitempty" validate:"omitempty,oneof=POSE REST"`
	Bones       []Bone       `yaml:"bones" json:"bones" validate:"unique=Name,dive"`
	Collections []Collection `yaml:"collections,omitempty" json:"collections,omitempty" validate:"unique=Name,dive"`
}

// Object is a node in the scene. Only ARMATURE objects carry armature data.
type Object struct {
	Name     string     `yaml:"name" json:"name" validate:"required"`
	Type     ObjectType `yaml:"type" json:"type" validate:"required"`
	Parent   string     `yaml:"parent,omitempty" json:"parent,omitempty"`
	Selected bool       `yaml:"selected,omitempty" json:"selected,omitempty"`
	Armature *Armature  `yaml:"armature,omitempty" json:"armature,omitempty" validate:"required_if=Type ARMATURE"`
}

// Scene is the document ossuary reads and writes
type Scene struct {
	// Active names the active object, if any
	Active  string   `yaml:"active,omitempty" json:"active,omitempty"`
	Objects []Object `yaml:"objects" json:"objects" validate:"unique=Name,dive"`
}
