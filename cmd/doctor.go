package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/operator"
	"github.com/kennyg/ossuary/internal/rig"
	"github.com/kennyg/ossuary/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor <scene>",
	Short: "Check a scene's armatures for collection problems",
	Long: `Check every armature in a scene, or one with --rig.

Looks for bones with missing parents, collections listing unknown bones,
bones in no collection or in several, and collections that differ from
what 'ossuary organize' would build. Exits non-zero when a check fails.

Examples:
  ossuary doctor hero.yaml
  ossuary doctor hero.yaml --rig Hero_Rig --default-group main`,
	Args: cobra.ExactArgs(1),
	Run:  runDoctor,
}

var (
	doctorRig          string
	doctorDefaultGroup string
	doctorJSON         bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorRig, "rig", "", "Armature object name")
	doctorCmd.Flags().StringVar(&doctorDefaultGroup, "default-group", "", "Default group: uncategorized or main")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output as JSON")
}

func runDoctor(cmd *cobra.Command, args []string) {
	path := args[0]
	settings := loadSettings(doctorDefaultGroup)

	scene, err := rig.Load(path)
	if err != nil {
		exitWithError(err.Error())
	}

	armatures := scene.Armatures()
	if doctorRig != "" {
		obj := scene.Object(doctorRig)
		if !obj.IsArmature() {
			exitWithError(fmt.Sprintf("'%s' is not an armature in %s", doctorRig, path))
		}
		armatures = []*rig.Object{obj}
	}

	report := make(map[string][]rig.CheckResult, len(armatures))
	failed := false
	for _, obj := range armatures {
		grouping := classify.Classify(obj.ListBones(), classify.Options{Variant: settings.DefaultGroup})
		results := obj.Check(operator.Collections(grouping, settings.HideCategories))
		report[obj.Name] = results
		if rig.HasFailures(results) {
			failed = true
		}
	}

	if doctorJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			exitWithError(err.Error())
		}
		fmt.Println(string(data))
	} else {
		fmt.Println()
		fmt.Println(ui.SectionHeader("Diagnosing"))
		fmt.Println()

		if len(armatures) == 0 {
			fmt.Println(ui.Render(ui.Muted, "  No armatures in "+path))
		}
		for _, obj := range armatures {
			printChecks(obj.Name, report[obj.Name])
			fmt.Println()
		}
		fmt.Print(ui.PageFooter())
	}

	if failed {
		os.Exit(1)
	}
}

func printChecks(name string, results []rig.CheckResult) {
	if rig.HasFailures(results) {
		fmt.Printf("  %s %s\n", ui.Render(ui.Error, "✗"), name)
	} else {
		fmt.Printf("  %s %s\n", ui.Render(ui.Success, "✓"), name)
	}

	for _, r := range results {
		if r.Satisfied {
			if verbose {
				fmt.Printf("    %s %s\n", ui.Render(ui.Success, "✓"), r.Type)
			}
			continue
		}
		fmt.Printf("    %s %s\n", ui.Render(ui.Error, "✗"), r.Type)
		if r.Message != "" {
			fmt.Println(ui.Render(ui.Muted, "      "+r.Message))
		}
	}
}
