package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/operator"
	"github.com/kennyg/ossuary/internal/rig"
	"github.com/kennyg/ossuary/internal/ui"
)

var organizeCmd = &cobra.Command{
	Use:     "organize <scene>",
	Aliases: []string{"sort", "inter"},
	Short:   "Rebuild the active rig's bone collections",
	Long: `Clear every bone collection on the active armature and regroup its bones by name.

Rules, first match wins:
  JIGGLE    -> "<base> Jigglebones"
  DRIVER    -> "<base> Drivers"
  AIM, SOCKET, EFFECT, IK, UTILITY, HAIR, ACCE, OBI -> "<TOKEN> Bones"
  otherwise -> "Uncategorized Bones" (or "Main Bones")

The scene is rewritten in place unless --output is given.

Examples:
  ossuary organize hero.yaml
  ossuary organize hero.yaml --default-group main -o hero.sorted.yaml
  ossuary organize hero.json --dry-run --json`,
	Args: cobra.ExactArgs(1),
	Run:  runOrganize,
}

var (
	organizeDefaultGroup string
	organizeShowAll      bool
	organizeDryRun       bool
	organizeJSON         bool
	organizeOutput       string
)

func init() {
	organizeCmd.Flags().StringVar(&organizeDefaultGroup, "default-group", "", "Default group: uncategorized or main")
	organizeCmd.Flags().BoolVar(&organizeShowAll, "show-all", false, "Leave every collection visible")
	organizeCmd.Flags().BoolVar(&organizeDryRun, "dry-run", false, "Classify without writing the scene")
	organizeCmd.Flags().BoolVar(&organizeJSON, "json", false, "Output as JSON")
	organizeCmd.Flags().StringVarP(&organizeOutput, "output", "o", "", "Write the organized scene here instead of in place")
}

// organizeJSONResult is the --json output
type organizeJSONResult struct {
	Scene   string           `json:"scene"`
	Rig     string           `json:"rig"`
	Status  operator.Status  `json:"status"`
	DryRun  bool             `json:"dry_run"`
	Default string           `json:"default"`
	Groups  []classify.Group `json:"groups"`
}

func runOrganize(cmd *cobra.Command, args []string) {
	path := args[0]
	settings := loadSettings(organizeDefaultGroup)

	scene, err := rig.Load(path)
	if err != nil {
		exitWithError(err.Error())
	}

	if !organizeJSON {
		fmt.Println()
		fmt.Println(ui.SectionHeader("Organizing Bones"))
		fmt.Println()
	}

	op := operator.New(logger.With(zap.String("scene", path)), consoleReporter(organizeJSON))
	res, err := op.Organize(operator.SceneSelection(scene), operator.OrganizeOptions{
		Variant:        settings.DefaultGroup,
		HideCategories: settings.HideCategories && !organizeShowAll,
		DryRun:         organizeDryRun,
	})
	if err != nil {
		if errors.Is(err, operator.ErrNoRig) {
			exitWithError(fmt.Sprintf("no armature is active in %s", path))
		}
		exitWithError(err.Error())
	}

	if !organizeDryRun {
		out := outputPath(path, organizeOutput, settings.Format)
		if err := rig.Save(out, scene); err != nil {
			exitWithError(fmt.Sprintf("failed to write %s: %v", out, err))
		}
		logger.Debug("scene written", zap.String("path", out))
	}

	if organizeJSON {
		data, err := json.MarshalIndent(organizeJSONResult{
			Scene:   path,
			Rig:     res.Rig,
			Status:  res.Status,
			DryRun:  organizeDryRun,
			Default: res.Grouping.Default,
			Groups:  res.Grouping.Groups,
		}, "", "  ")
		if err != nil {
			exitWithError(err.Error())
		}
		fmt.Println(string(data))
		return
	}

	hide := settings.HideCategories && !organizeShowAll
	fmt.Println()
	for _, c := range operator.Collections(res.Grouping, hide) {
		printGroupLine(res.Grouping.Group(c.Name).Kind, c)
	}
	fmt.Println(ui.PageFooter())
}

// printGroupLine prints one collection with its kind, size, and visibility
func printGroupLine(kind classify.Kind, c rig.Collection) {
	name := ui.PadRight(c.Name, 28)
	count := fmt.Sprintf("%3d", len(c.Bones))
	if len(c.Bones) == 0 {
		name = ui.Render(ui.Dim, name)
		count = ui.Render(ui.Dim, count)
	}
	fmt.Printf("  %s %s %s  %s\n", ui.PadRight(ui.KindBadge(kind), 12), name, count, ui.VisibilityMark(c.Visible))
}
