package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "contact-sheet <folder>",
	Short: "Generate a PDF contact sheet from a folder of images",
	Long: `Contact Sheet lays out every supported image from a folder into a paginated
grid PDF, the way darkroom contact prints arrange film strips.

Examples:
  # Automatic grid, A4 portrait, film-strip fill order
  contact-sheet ./scans

  # Fixed 4x6 grid with filename captions on A3 landscape
  contact-sheet --rows 4 --cols 6 --labels name --page-size a3 --page-orient landscape ./scans

  # Reading order, custom spacing, explicit output path
  contact-sheet --order row-left-right --margin-mm 8 --gap-mm 1.5 -o sheet.pdf ./scans`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	RunE: runGenerate,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	addGenerateFlags(rootCmd)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
