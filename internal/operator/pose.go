package operator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kennyg/ossuary/internal/rig"
)

// PoseResult is what TogglePose did
type PoseResult struct {
	Status   Status
	Rig      string
	Position rig.PosePosition
}

// TogglePose flips the resolved armature between pose and rest position
func (op *Operator) TogglePose(sel Selection) (*PoseResult, error) {
	arm, ok := sel.ResolveArmature()
	if !ok {
		op.reporter.Report(LevelWarning, "No Armature found for toggling.")
		return &PoseResult{Status: StatusCancelled}, ErrNoArmature
	}

	next, label := rig.PosePose, "Pose Position"
	if arm.Position() == rig.PosePose {
		next, label = rig.PoseRest, "Rest Position"
	}
	arm.SetPosition(next)

	op.logger.Info("toggled pose position",
		zap.String("rig", arm.RigName()),
		zap.String("position", string(next)),
	)
	op.reporter.Report(LevelInfo, fmt.Sprintf("Armature '%s' set to %s.", arm.RigName(), label))

	return &PoseResult{Status: StatusFinished, Rig: arm.RigName(), Position: next}, nil
}
