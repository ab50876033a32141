// Package operator implements the user-invoked operations on a rig:
// organizing bone collections and toggling pose/rest position.
//
// Operators never talk to a scene directly. They see the rig through the
// Selection and Armature interfaces and report back through a Reporter, so
// any host that can list bones and replace collections can drive them.
package operator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/kennyg/ossuary/internal/rig"
)

// Status is the outcome of an operator run
type Status string

const (
	StatusFinished  Status = "FINISHED"
	StatusCancelled Status = "CANCELLED"
)

// Level is the severity of a report
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
)

var (
	// ErrNoRig is returned by Organize when no armature is active
	ErrNoRig = errors.New("no armature selected")
	// ErrNoArmature is returned by TogglePose when no armature can be resolved
	ErrNoArmature = errors.New("no armature found")
)

// Reporter receives user-facing messages
type Reporter interface {
	Report(level Level, message string)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(level Level, message string)

// Report calls f
func (f ReporterFunc) Report(level Level, message string) {
	f(level, message)
}

// Armature is the read/write view of a rig the operators need
type Armature interface {
	RigName() string
	ListBones() []string
	SetCollections(collections []rig.Collection) error
	Position() rig.PosePosition
	SetPosition(p rig.PosePosition)
}

// Selection resolves which armature an operator acts on
type Selection interface {
	// ActiveArmature returns the active object when it is an armature
	ActiveArmature() (Armature, bool)
	// ResolveArmature also accepts the active object's parent or a selected armature
	ResolveArmature() (Armature, bool)
}

// Operator runs operations, logging through zap and reporting to the user
type Operator struct {
	logger   *zap.Logger
	reporter Reporter
}

// New creates an Operator. A nil logger disables logging; a nil reporter
// discards reports.
func New(logger *zap.Logger, reporter Reporter) *Operator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = ReporterFunc(func(Level, string) {})
	}
	return &Operator{logger: logger, reporter: reporter}
}

// SceneSelection exposes a scene document as a Selection
func SceneSelection(s *rig.Scene) Selection {
	return sceneSelection{scene: s}
}

type sceneSelection struct {
	scene *rig.Scene
}

func (s sceneSelection) ActiveArmature() (Armature, bool) {
	obj := s.scene.ActiveArmature()
	if obj == nil {
		return nil, false
	}
	return obj, true
}

func (s sceneSelection) ResolveArmature() (Armature, bool) {
	obj := s.scene.ResolveArmature()
	if obj == nil {
		return nil, false
	}
	return obj, true
}
