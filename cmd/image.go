package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storyreel/internal/gateway"

	"github.com/spf13/cobra"
)

var (
	imagePrompt    string
	imageReference string
	imageOut       string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate a 9:16 scene image",
	RunE:  runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imagePrompt, "prompt", "p", "", "Scene description")
	imageCmd.Flags().StringVarP(&imageReference, "reference", "r", "", "Style reference image (file path or data URI)")
	imageCmd.Flags().StringVarP(&imageOut, "out", "o", "scene", "Output path; the extension follows the image type")
	_ = imageCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	reference, err := readImage(imageReference)
	if err != nil {
		return err
	}

	_, gw, err := loadGateway(cmd.Context())
	if err != nil {
		return err
	}

	var image string
	if err := runWithSpinner("Generating image", func() error {
		image, err = gw.GenerateSceneImage(cmd.Context(), gateway.SceneImageRequest{
			Prompt:         imagePrompt,
			ReferenceImage: reference,
			APIKey:         apiKey,
		})
		return err
	}); err != nil {
		return err
	}

	if image == "" {
		fmt.Println(warnStyle.Render("No image produced"))
		return nil
	}

	parsed := gateway.ParseDataURI(image)
	data, err := parsed.Bytes()
	if err != nil {
		return err
	}

	path := imageOut
	if filepath.Ext(path) == "" {
		path += "." + strings.TrimPrefix(parsed.MIMEType, "image/")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	fmt.Println(infoStyle.Render("Saved " + path))
	return nil
}
