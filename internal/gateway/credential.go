package gateway

import "errors"

var (
	ErrMissingCredential = errors.New("gateway: no API key provided and no fallback configured")
	ErrEmptyText         = errors.New("gateway: text must not be empty")
	ErrUnsupportedVoice  = errors.New("gateway: unsupported voice")
)

// ResolveCredential prefers the explicit per-call key over the process-wide fallback.
func ResolveCredential(explicit, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrMissingCredential
}
