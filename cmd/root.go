package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kennyg/ossuary/internal/classify"
	"github.com/kennyg/ossuary/internal/config"
	"github.com/kennyg/ossuary/internal/operator"
	"github.com/kennyg/ossuary/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"

	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ossuary",
	Short: "Rig bone collection organizer",
	Long: ui.Logo() + `

  Sort a rig's bones into collections by name.
  Jigglebones, drivers, AIM, SOCKET, IK and friends each get their own home.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(poseCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ossuary %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Render(ui.Error, "Error: "+msg))
	os.Exit(1)
}

// loadSettings reads user and project config, then applies a --default-group override
func loadSettings(defaultGroup string) config.Settings {
	paths, err := config.GetPaths()
	if err != nil {
		exitWithError(err.Error())
	}

	settings, err := paths.Load()
	if err != nil {
		exitWithError(err.Error())
	}

	if defaultGroup != "" {
		settings.DefaultGroup = classify.Variant(defaultGroup)
		if err := settings.Validate(); err != nil {
			exitWithError(fmt.Sprintf("--default-group: %v", err))
		}
	}

	logger.Debug("settings loaded",
		zap.String("user_config", paths.UserConfigFile),
		zap.Bool("has_project_config", paths.HasProjectConfig()),
		zap.String("project_config", paths.ProjectConfigFile),
		zap.String("default_group", string(settings.DefaultGroup)),
		zap.Bool("hide_categories", settings.HideCategories),
	)
	return settings
}

// outputPath resolves where a scene is written: in place, or to -o with the
// configured format appended when -o has no extension
func outputPath(input, output, format string) string {
	if output == "" {
		return input
	}
	if filepath.Ext(output) == "" {
		return output + "." + format
	}
	return output
}

// consoleReporter prints operator reports as status lines
func consoleReporter(quiet bool) operator.Reporter {
	return operator.ReporterFunc(func(level operator.Level, message string) {
		if quiet {
			return
		}
		switch level {
		case operator.LevelWarning:
			fmt.Fprintln(os.Stderr, ui.WarningLine(message))
		default:
			fmt.Println(ui.SuccessLine(message))
		}
	})
}
