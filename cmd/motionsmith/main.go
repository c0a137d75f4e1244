package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"motionsmith/internal/assistant"
	"motionsmith/internal/logging"
)

var (
	// Global flags
	verbose   bool
	workspace string
	pretty    bool

	// Generation flags
	genContext    string
	genComplexity string
	refDetail     string
	dbgCode       string
	dbgExpected   string
	optTarget     string
	patCategory   string

	// Logger
	logger *zap.Logger

	dispatcher *assistant.Dispatcher
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "motionsmith",
	Short: "motionsmith - GSAP animation assistant",
	Long: `motionsmith classifies free-text animation requests against a fixed
intent taxonomy and renders parameterized GSAP code templates.

It also serves API reference lookups, debugging diagnoses, best-effort
code optimization passes, and named production templates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws := workspace
		if ws == "" {
			ws, _ = os.Getwd()
		}
		if ws != "" {
			if err := logging.Initialize(ws); err != nil {
				logger.Warn("File logging disabled", zap.Error(err))
			}
			if err := logging.InitAudit(); err != nil {
				logger.Warn("Audit logging disabled", zap.Error(err))
			}
		}

		dispatcher, err = assistant.NewDispatcher()
		if err != nil {
			return fmt.Errorf("failed to initialize dispatcher: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAudit()
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd runs the full classify-and-generate pipeline
var generateCmd = &cobra.Command{
	Use:   "generate [request]",
	Short: "Classify an animation request and generate GSAP code",
	Long: `Scores the request against the animation intent taxonomy, extracts
feature flags, and renders the matching code template:

  motionsmith generate "fade in cards one by one when scrolling into view"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(assistant.OpClassifyAndGenerate, map[string]string{
			"request":    joinArgs(args),
			"context":    genContext,
			"complexity": genComplexity,
		})
	},
}

// referenceCmd looks up an entry in the knowledge tables
var referenceCmd = &cobra.Command{
	Use:   "reference [element]",
	Short: "Look up a GSAP API element in the reference tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(assistant.OpLookupReference, map[string]string{
			"element_name": args[0],
			"detail_level": refDetail,
		})
	},
}

// debugCmd diagnoses a broken animation
var debugCmd = &cobra.Command{
	Use:   "debug [issue description]",
	Short: "Diagnose an animation problem",
	Long: `Matches the issue description against known failure modes and, when
--code is supplied, scans the snippet for known anti-patterns:

  motionsmith debug "scrolltrigger fires at the wrong time" --code "$(cat anim.js)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(assistant.OpDebugRequest, map[string]string{
			"issue_description": joinArgs(args),
			"code":              dbgCode,
			"expected":          dbgExpected,
		})
	},
}

// optimizeCmd rewrites a snippet with the documented substitutions
var optimizeCmd = &cobra.Command{
	Use:   "optimize [source code]",
	Short: "Apply best-effort textual optimizations to a GSAP snippet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(assistant.OpOptimizeRequest, map[string]string{
			"source_code": joinArgs(args),
			"target":      optTarget,
		})
	},
}

// patternCmd serves a named production template
var patternCmd = &cobra.Command{
	Use:   "pattern [pattern-type]",
	Short: "Print a named production animation template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(assistant.OpBuildPattern, map[string]string{
			"pattern_type":   args[0],
			"category_label": patCategory,
		})
	},
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("motionsmith %s\n", version)
	},
}

const version = "1.2.0"

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// dispatch runs one operation and prints its result.
func dispatch(op string, args map[string]string) error {
	logger.Debug("Dispatching operation", zap.String("op", op))

	result := dispatcher.Dispatch(op, args)
	if result.IsError {
		logger.Error("Operation failed",
			zap.String("op", op),
			zap.String("request_id", result.RequestID),
			zap.String("error", result.ErrMessage))
		return fmt.Errorf("%s", result.ErrMessage)
	}

	logger.Info("Operation succeeded",
		zap.String("op", op),
		zap.String("request_id", result.RequestID))

	return printResult(result.Text)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root for .motionsmith logs (default: cwd)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Render output as styled terminal markdown")

	generateCmd.Flags().StringVar(&genContext, "context", assistant.DefaultContext, "Integration context (react|vue|vanilla|next|svelte)")
	generateCmd.Flags().StringVar(&genComplexity, "complexity", assistant.DefaultComplexity, "Explanation depth (beginner|intermediate|advanced)")
	referenceCmd.Flags().StringVar(&refDetail, "detail", assistant.DefaultDetailLevel, "Detail level (basic|advanced)")
	debugCmd.Flags().StringVar(&dbgCode, "code", "", "Code snippet to scan for anti-patterns")
	debugCmd.Flags().StringVar(&dbgExpected, "expected", "", "What the animation was expected to do")
	optimizeCmd.Flags().StringVar(&optTarget, "target", assistant.DefaultTarget, "Optimization target (performance|filesize|smoothness)")
	patternCmd.Flags().StringVar(&patCategory, "category", assistant.DefaultCategoryLabel, "Site category label for the template")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
