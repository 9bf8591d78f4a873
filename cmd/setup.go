package cmd

import (
	"fmt"
	"os"
	"strconv"

	"storyreel/internal/gateway"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for Storyreel",
	Long:  `Store a Gemini API key in .env and write default voice and render settings to config.yaml.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

type setupAnswers struct {
	APIKey      string
	Voice       string
	StylePrompt string
	Output      string
	Concurrency string
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("🎬 Storyreel Setup"))

	answers := setupAnswers{
		Voice:       gateway.VoiceKore.String(),
		Output:      "./output",
		Concurrency: "3",
	}

	voiceOptions := make([]huh.Option[string], 0, len(gateway.Voices))
	for _, v := range gateway.Voices {
		voiceOptions = append(voiceOptions, huh.NewOption(v.String(), v.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API key").
				Description("Leave empty to pass --key on every call").
				EchoMode(huh.EchoModePassword).
				Value(&answers.APIKey),
			huh.NewSelect[string]().
				Title("Narration voice").
				Options(voiceOptions...).
				Value(&answers.Voice),
			huh.NewInput().
				Title("Delivery style").
				Description("Optional instruction, e.g. 'Read like a calm documentary narrator'").
				Value(&answers.StylePrompt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Render destination").
				Description("Local directory, gs://bucket/prefix or s3://bucket/prefix").
				Value(&answers.Output),
			huh.NewInput().
				Title("Scenes rendered in parallel").
				Validate(positiveInt).
				Value(&answers.Concurrency),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if answers.APIKey != "" {
		if err := writeEnvFile(map[string]string{"GEMINI_API_KEY": answers.APIKey}); err != nil {
			return err
		}
	}

	if err := writeConfigFile(answers); err != nil {
		return err
	}

	printNextSteps()
	return nil
}

func writeEnvFile(env map[string]string) error {
	if !confirmOverwrite(".env") {
		fmt.Println(infoStyle.Render("Kept existing .env"))
		return nil
	}

	f, err := os.OpenFile(".env", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create .env: %w", err)
	}
	defer func() { _ = f.Close() }()

	for key, value := range env {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
			return fmt.Errorf("write .env: %w", err)
		}
	}

	fmt.Println(successStyle.Render("✓ Saved .env"))
	return nil
}

func writeConfigFile(answers setupAnswers) error {
	if !confirmOverwrite("config.yaml") {
		fmt.Println(infoStyle.Render("Kept existing config.yaml"))
		return nil
	}

	concurrency, _ := strconv.Atoi(answers.Concurrency)
	doc := map[string]any{
		"speech": map[string]any{
			"voice":        answers.Voice,
			"style_prompt": answers.StylePrompt,
		},
		"render": map[string]any{
			"output":      answers.Output,
			"concurrency": concurrency,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile("config.yaml", data, 0644); err != nil {
		return fmt.Errorf("write config.yaml: %w", err)
	}

	fmt.Println(successStyle.Render("✓ Saved config.yaml"))
	return nil
}

func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}

	var overwrite bool
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("Found existing %s", path)).
		Description("Overwrite?").
		Value(&overwrite).
		Run(); err != nil {
		return false
	}
	return overwrite
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps"))
	fmt.Println(infoStyle.Render(`  storyreel storyboard --text "The hero drew his sword. He charged into battle."`))
	fmt.Println(infoStyle.Render("  storyreel render --file story.txt"))
}
