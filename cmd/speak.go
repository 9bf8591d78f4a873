package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"storyreel/internal/app"
	"storyreel/internal/gateway"

	"github.com/spf13/cobra"
)

var (
	speakText  string
	speakFile  string
	speakVoice string
	speakStyle string
	speakOut   string
)

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Synthesize narration to a WAV file",
	RunE:  runSpeak,
}

func init() {
	speakCmd.Flags().StringVarP(&speakText, "text", "t", "", "Text to speak")
	speakCmd.Flags().StringVarP(&speakFile, "file", "f", "", "Read text from file ('-' for stdin)")
	speakCmd.Flags().StringVar(&speakVoice, "voice", "", "Prebuilt voice name (defaults to config)")
	speakCmd.Flags().StringVar(&speakStyle, "style", "", "Delivery instructions (defaults to config)")
	speakCmd.Flags().StringVarP(&speakOut, "out", "o", "speech.wav", "Output WAV path")
	rootCmd.AddCommand(speakCmd)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text, err := readText(speakText, speakFile)
	if err != nil {
		return err
	}

	cfg, gw, err := loadGateway(cmd.Context())
	if err != nil {
		return err
	}

	req := gateway.SpeechRequest{
		Text:        text,
		Voice:       gateway.Voice(cfg.Speech.Voice),
		StylePrompt: cfg.Speech.StylePrompt,
		APIKey:      apiKey,
	}
	if speakVoice != "" {
		req.Voice = gateway.Voice(speakVoice)
	}
	if speakStyle != "" {
		req.StylePrompt = speakStyle
	}

	var audio string
	if err := runWithSpinner("Synthesizing speech", func() error {
		audio, err = gw.SynthesizeSpeech(cmd.Context(), req)
		return err
	}); err != nil {
		return err
	}

	if audio == "" {
		fmt.Println(warnStyle.Render("No audio produced"))
		return nil
	}

	pcm, err := base64.StdEncoding.DecodeString(audio)
	if err != nil {
		return fmt.Errorf("decode audio: %w", err)
	}
	if err := os.WriteFile(speakOut, app.WAV(pcm, app.SpeechSampleRate), 0644); err != nil {
		return fmt.Errorf("save audio: %w", err)
	}

	fmt.Println(infoStyle.Render("Saved " + speakOut))
	return nil
}
