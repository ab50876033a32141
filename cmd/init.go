package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/config"
	"github.com/kennyg/ossuary/internal/ui"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"consecrate"},
	Short:   "Write a default config file",
	Long: `Create a config.yaml with ossuary's default settings.

By default the file goes to .config/ossuary/ at the project root (the nearest
directory holding .git or .config/ossuary, else the current directory), which
makes it a project config. With --global it goes to ~/.config/ossuary/.

Examples:
  ossuary init
  ossuary init --default-group main
  ossuary init --global --show-all`,
	Run: runInit,
}

var (
	initGlobal       bool
	initForce        bool
	initDefaultGroup string
	initShowAll      bool
	initFormat       string
)

func init() {
	initCmd.Flags().BoolVarP(&initGlobal, "global", "g", false, "Write the user config instead of a project config")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
	initCmd.Flags().StringVar(&initDefaultGroup, "default-group", string(classify.VariantUncategorized), "Default group: uncategorized or main")
	initCmd.Flags().BoolVar(&initShowAll, "show-all", false, "Leave every collection visible after organizing")
	initCmd.Flags().StringVar(&initFormat, "format", "yaml", "Format for outputs without an extension: yaml or json")
}

func runInit(cmd *cobra.Command, args []string) {
	var path string
	if initGlobal {
		paths, err := config.GetPaths()
		if err != nil {
			exitWithError(err.Error())
		}
		path = paths.UserConfigFile
	} else {
		root := config.FindProjectRoot()
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				exitWithError(fmt.Sprintf("failed to get current directory: %v", err))
			}
			root = cwd
		}
		path = filepath.Join(root, ".config", config.ConfigDir, config.ConfigFile)
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		exitWithError(fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	settings := config.Settings{
		DefaultGroup:   classify.Variant(initDefaultGroup),
		HideCategories: !initShowAll,
		Format:         initFormat,
	}
	if err := config.SaveSettings(path, settings); err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.SuccessLine("Created " + path))
	fmt.Println(ui.InfoLine(fmt.Sprintf("Unmatched bones go to \"%s\"", classify.DefaultGroupName(settings.DefaultGroup))))
	if settings.HideCategories {
		fmt.Println(ui.InfoLine("Category collections start hidden"))
	}
	fmt.Println(ui.PageFooter())
}
