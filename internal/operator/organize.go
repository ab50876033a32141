package operator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/rig"
)

// OrganizeOptions controls Organize
type OrganizeOptions struct {
	Variant classify.Variant
	// HideCategories creates every collection except the default one hidden
	HideCategories bool
	// DryRun classifies and reports without touching the armature
	DryRun bool
}

// OrganizeResult is what Organize did
type OrganizeResult struct {
	Status   Status
	Rig      string
	Grouping *classify.Grouping
}

// Organize rebuilds the bone collections of the active armature from bone
// names. Existing collections are discarded, not updated.
func (op *Operator) Organize(sel Selection, opts OrganizeOptions) (*OrganizeResult, error) {
	arm, ok := sel.ActiveArmature()
	if !ok {
		op.reporter.Report(LevelWarning, "Please select an armature.")
		op.logger.Debug("organize cancelled: no active armature")
		return &OrganizeResult{Status: StatusCancelled}, ErrNoRig
	}

	bones := arm.ListBones()
	grouping := classify.Classify(bones, classify.Options{Variant: opts.Variant})

	log := op.logger.With(zap.String("rig", arm.RigName()))
	log.Debug("classified bones",
		zap.Int("bones", grouping.BoneCount()),
		zap.Int("groups", len(grouping.Groups)),
		zap.Int("populated", len(grouping.Populated())),
	)

	result := &OrganizeResult{Status: StatusFinished, Rig: arm.RigName(), Grouping: grouping}

	if opts.DryRun {
		op.reporter.Report(LevelInfo, fmt.Sprintf("Would organize %d bones into %d collections on '%s'.",
			grouping.BoneCount(), len(grouping.Groups), arm.RigName()))
		return result, nil
	}

	if err := arm.SetCollections(Collections(grouping, opts.HideCategories)); err != nil {
		log.Error("failed to replace collections", zap.Error(err))
		return &OrganizeResult{Status: StatusCancelled, Rig: arm.RigName()}, fmt.Errorf("failed to organize '%s': %w", arm.RigName(), err)
	}

	log.Info("organized bone collections", zap.Int("bones", grouping.BoneCount()), zap.Int("collections", len(grouping.Groups)))
	op.reporter.Report(LevelInfo, fmt.Sprintf("Organized %d bones into %d collections on '%s'.",
		grouping.BoneCount(), len(grouping.Groups), arm.RigName()))

	return result, nil
}

// Collections converts a grouping into bone collections, in grouping order.
// With hideCategories set, only the default group starts visible.
func Collections(g *classify.Grouping, hideCategories bool) []rig.Collection {
	out := make([]rig.Collection, 0, len(g.Groups))
	for _, grp := range g.Groups {
		out = append(out, rig.Collection{
			Name:    grp.Name,
			Visible: !hideCategories || grp.Name == g.Default,
			Bones:   append([]string(nil), grp.Bones...),
		})
	}
	return out
}
