package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kennyg/ossuary/internal/operator"
	"github.com/kennyg/ossuary/internal/rig"
)

var poseCmd = &cobra.Command{
	Use:     "pose <scene>",
	Aliases: []string{"rest", "toggle"},
	Short:   "Toggle an armature between pose and rest position",
	Long: `Flip the armature between its pose and rest position.

The armature is the active object, the active object's parent, or the
first selected armature, in that order.

Examples:
  ossuary pose hero.yaml
  ossuary pose hero.yaml -o hero.rest.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPose,
}

var poseOutput string

func init() {
	poseCmd.Flags().StringVarP(&poseOutput, "output", "o", "", "Write the scene here instead of in place")
}

func runPose(cmd *cobra.Command, args []string) {
	path := args[0]

	scene, err := rig.Load(path)
	if err != nil {
		exitWithError(err.Error())
	}

	op := operator.New(logger.With(zap.String("scene", path)), consoleReporter(false))
	if _, err := op.TogglePose(operator.SceneSelection(scene)); err != nil {
		exitWithError(fmt.Sprintf("%s: %v", path, err))
	}

	out := outputPath(path, poseOutput, loadSettings("").Format)
	if err := rig.Save(out, scene); err != nil {
		exitWithError(fmt.Sprintf("failed to write %s: %v", out, err))
	}
}
