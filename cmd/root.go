package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	apiKey  string
)

var rootCmd = &cobra.Command{
	Use:   "storyreel",
	Short: "Turn narration into vertical storyboards with Gemini",
	Long: `Storyreel splits narration into scenes, generates a 9:16 image and spoken
audio for each one, and checks whether scenes feature a character.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "key", "", "Gemini API key for this call (overrides GEMINI_API_KEY)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
