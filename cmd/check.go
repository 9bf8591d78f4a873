package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var checkImage string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether a character is the main subject of an image",
	Long: `Prints true or false. The check fails open: without an API key, or when
the request fails, it prints true.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkImage, "image", "i", "", "Image file path or data URI")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkImage == "" {
		return errors.New("please provide --image")
	}

	image, err := readImage(checkImage)
	if err != nil {
		return err
	}

	_, gw, err := loadGateway(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(gw.HasCharacter(cmd.Context(), image, apiKey))
	return nil
}
