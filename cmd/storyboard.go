package cmd

import (
	"encoding/json"
	"fmt"

	"storyreel/internal/gateway"

	"github.com/spf13/cobra"
)

var (
	storyboardText string
	storyboardFile string
	storyboardJSON bool
)

var storyboardCmd = &cobra.Command{
	Use:   "storyboard",
	Short: "Split narration into scenes with image prompts",
	RunE:  runStoryboard,
}

func init() {
	storyboardCmd.Flags().StringVarP(&storyboardText, "text", "t", "", "Narration text")
	storyboardCmd.Flags().StringVarP(&storyboardFile, "file", "f", "", "Read narration from file ('-' for stdin)")
	storyboardCmd.Flags().BoolVar(&storyboardJSON, "json", false, "Print raw JSON")
	rootCmd.AddCommand(storyboardCmd)
}

func runStoryboard(cmd *cobra.Command, args []string) error {
	text, err := readText(storyboardText, storyboardFile)
	if err != nil {
		return err
	}

	_, gw, err := loadGateway(cmd.Context())
	if err != nil {
		return err
	}

	if storyboardJSON {
		segments, err := gw.DecomposeStoryboard(cmd.Context(), text, apiKey)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(segments, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	var segments []gateway.StoryboardSegment
	if err := runWithSpinner("Decomposing storyboard", func() error {
		segments, err = gw.DecomposeStoryboard(cmd.Context(), text, apiKey)
		return err
	}); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d scenes", len(segments))))
	for i, s := range segments {
		fmt.Println(sceneStyle.Render(fmt.Sprintf("%s\n%s\n\n%s\n%s",
			labelStyle.Render(fmt.Sprintf("Scene %d", i+1)), s.NarrativeText,
			labelStyle.Render("Prompt"), s.ImagePrompt)))
	}
	return nil
}
