package cmd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"storyreel/internal/app"
	"storyreel/internal/gateway"
	"storyreel/pkg/config"
)

func loadGateway(ctx context.Context) (*config.Config, *gateway.Gateway, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	gw, err := app.BuildGateway(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gw, nil
}

// readText returns text, or the contents of file ("-" reads stdin).
func readText(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file == "" {
		return "", errors.New("please provide --text or --file")
	}

	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// readImage accepts a data-URI as-is or loads a file and encodes it as one.
func readImage(ref string) (string, error) {
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return ref, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", ref, err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s does not look like an image (%s)", ref, mimeType)
	}
	return gateway.BuildDataURI(mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
