package gateway

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

const defaultImageMIMEType = "image/png"

var dataURIHeaderRegex = regexp.MustCompile(`^data:([^;,]+);`)

// DataURI is the parsed form of a data:<mime>;base64,<payload> string.
type DataURI struct {
	MIMEType string
	Data     string
}

// ParseDataURI splits a data-URI into its MIME type and base64 payload.
// An unparseable header yields image/png; the payload is everything after the first comma.
func ParseDataURI(uri string) DataURI {
	mimeType := defaultImageMIMEType
	if m := dataURIHeaderRegex.FindStringSubmatch(uri); m != nil {
		mimeType = m[1]
	}

	var data string
	if _, after, ok := strings.Cut(uri, ","); ok {
		data = after
	}

	return DataURI{MIMEType: mimeType, Data: data}
}

// BuildDataURI is the inverse of ParseDataURI.
func BuildDataURI(mimeType, base64Data string) string {
	if mimeType == "" {
		mimeType = defaultImageMIMEType
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}

func (d DataURI) String() string {
	return BuildDataURI(d.MIMEType, d.Data)
}

// Bytes decodes the base64 payload.
func (d DataURI) Bytes() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data uri payload: %w", err)
	}
	return data, nil
}
