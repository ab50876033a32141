package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/ui"
)

var classifyCmd = &cobra.Command{
	Use:     "classify [bone-names...]",
	Aliases: []string{"explain", "which"},
	Short:   "Show which group bone names would land in",
	Long: `Classify bone names without touching a scene.

Names come from the arguments, or one per line on stdin when no
arguments are given.

Examples:
  ossuary classify SHIRT_JIGGLE_L1 ARM_IK_R SPINE_01
  ossuary classify --default-group main < bones.txt
  ossuary which DRIVER_PANT_L2 --json`,
	Run: runClassify,
}

var (
	classifyDefaultGroup string
	classifyJSON         bool
)

func init() {
	classifyCmd.Flags().StringVar(&classifyDefaultGroup, "default-group", "", "Default group: uncategorized or main")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output as JSON")
}

func runClassify(cmd *cobra.Command, args []string) {
	settings := loadSettings(classifyDefaultGroup)

	names := args
	if len(names) == 0 {
		var err error
		names, err = readNames(os.Stdin)
		if err != nil {
			exitWithError(fmt.Sprintf("failed to read names: %v", err))
		}
	}
	if len(names) == 0 {
		exitWithError("no bone names given")
	}

	opts := classify.Options{Variant: settings.DefaultGroup}
	matches := make([]classify.Match, 0, len(names))
	for _, name := range names {
		matches = append(matches, classify.Explain(name, opts))
	}

	if classifyJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			exitWithError(err.Error())
		}
		fmt.Println(string(data))
		return
	}

	width := 0
	for _, m := range matches {
		if len(m.Name) > width {
			width = len(m.Name)
		}
	}

	fmt.Println()
	for _, m := range matches {
		line := fmt.Sprintf("  %s  %s  %s", ui.PadRight(m.Name, width), ui.PadRight(ui.KindBadge(m.Kind), 12), ui.Render(ui.Title, m.Group))
		if m.Base != "" {
			line += ui.Render(ui.Muted, fmt.Sprintf("  (base %s)", m.Base))
		}
		fmt.Println(line)
	}

	grouping := classify.Classify(names, opts)
	fmt.Println()
	fmt.Println(ui.Render(ui.Muted, fmt.Sprintf("  %d bones across %d groups", grouping.BoneCount(), len(grouping.Populated()))))
	fmt.Println(ui.PageFooter())
}

// readNames reads one bone name per line, skipping blanks and # comments
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
