package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/rig"
	"github.com/kennyg/ossuary/internal/ui"
)

var groupsCmd = &cobra.Command{
	Use:     "groups <scene>",
	Aliases: []string{"collections", "ls"},
	Short:   "List an armature's bone collections",
	Long: `Show the bone collections of an armature with sizes and visibility.

Without --rig, the armature is resolved the same way 'pose' does it.

Examples:
  ossuary groups hero.yaml
  ossuary groups hero.yaml --rig Hero_Rig --bones
  ossuary groups hero.yaml --json`,
	Args: cobra.ExactArgs(1),
	Run:  runGroups,
}

var (
	groupsRig   string
	groupsBones bool
	groupsJSON  bool
)

func init() {
	groupsCmd.Flags().StringVar(&groupsRig, "rig", "", "Armature object name")
	groupsCmd.Flags().BoolVarP(&groupsBones, "bones", "b", false, "List bone names under each collection")
	groupsCmd.Flags().BoolVar(&groupsJSON, "json", false, "Output as JSON")
}

func runGroups(cmd *cobra.Command, args []string) {
	path := args[0]

	scene, err := rig.Load(path)
	if err != nil {
		exitWithError(err.Error())
	}

	var obj *rig.Object
	if groupsRig != "" {
		obj = scene.Object(groupsRig)
		if !obj.IsArmature() {
			exitWithError(fmt.Sprintf("'%s' is not an armature in %s", groupsRig, path))
		}
	} else {
		obj = scene.ResolveArmature()
		if obj == nil {
			exitWithError(fmt.Sprintf("no armature found in %s", path))
		}
	}

	if groupsJSON {
		data, err := json.MarshalIndent(obj.Armature.Collections, "", "  ")
		if err != nil {
			exitWithError(err.Error())
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader(obj.Name))
	fmt.Println()

	if len(obj.Armature.Collections) == 0 {
		fmt.Println(ui.Render(ui.Muted, "  No bone collections. Run 'ossuary organize' to create them."))
		fmt.Println(ui.PageFooter())
		return
	}

	unassigned := 0
	for _, b := range obj.Armature.Bones {
		if len(obj.CollectionsOf(b.Name)) == 0 {
			unassigned++
		}
	}

	for _, c := range obj.Armature.Collections {
		printGroupLine(kindOf(c.Name), c)
		if groupsBones && len(c.Bones) > 0 {
			fmt.Println(ui.Render(ui.Muted, "      "+strings.Join(c.Bones, ", ")))
		}
	}

	fmt.Println()
	summary := fmt.Sprintf("  %d bones in %d collections", len(obj.Armature.Bones), len(obj.Armature.Collections))
	if unassigned > 0 {
		summary += fmt.Sprintf(", %d unassigned", unassigned)
	}
	fmt.Println(ui.Render(ui.Dim, summary))
	fmt.Println(ui.PageFooter())
}

// kindOf infers a collection's kind from its name
func kindOf(name string) classify.Kind {
	switch {
	case name == classify.UncategorizedGroup || name == classify.MainGroup:
		return classify.KindDefault
	case strings.HasSuffix(name, " Jigglebones"):
		return classify.KindJiggle
	case strings.HasSuffix(name, " Drivers"):
		return classify.KindDriver
	}
	for _, g := range classify.CategoryGroups() {
		if name == g {
			return classify.KindCategory
		}
	}
	return ""
}
