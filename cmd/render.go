package cmd

import (
	"fmt"
	"log/slog"

	"storyreel/internal/app"
	"storyreel/pkg/config"

	"github.com/spf13/cobra"
)

var (
	renderText      string
	renderFile      string
	renderOut       string
	renderReference string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Storyboard narration and generate images and audio for every scene",
	Long: `Render splits the narration into scenes, then generates a scene image, a
character check and a narrated WAV for each scene. Artifacts and a
storyboard.json manifest are written to a local directory, gs:// or s3://.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderText, "text", "t", "", "Narration text")
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "Read narration from file ('-' for stdin)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Destination (directory, gs://bucket/prefix or s3://bucket/prefix)")
	renderCmd.Flags().StringVarP(&renderReference, "reference", "r", "", "Style reference image applied to every scene")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := readText(renderText, renderFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	reference := renderReference
	if reference == "" {
		reference = cfg.Render.StyleReference
	}
	reference, err = readImage(reference)
	if err != nil {
		return err
	}

	service, err := app.BuildService(cfg)
	if err != nil {
		return err
	}

	pipeline := app.NewPipeline(service)
	result, err := pipeline.Render(ctx, app.RenderRequest{
		Text:           text,
		APIKey:         apiKey,
		StyleReference: reference,
		Output:         renderOut,
	})
	if err != nil {
		return err
	}

	slog.Info("Render finished", "run", result.RunID, "scenes", len(result.Scenes))
	fmt.Println(successStyle.Render("✓ Manifest: " + result.Manifest))
	return nil
}
