package app

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxSlugLength = 40

type session struct {
	id string
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func newSession(title string, now time.Time) *session {
	slug := sanitizeForPath(title)
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "_")
	}
	if slug == "" {
		slug = "untitled"
	}

	return &session{
		id: fmt.Sprintf("%s_%s_%s", now.Format("20060102_150405"), slug, uuid.NewString()[:8]),
	}
}

func (s *session) imageName(index int, mimeType string) string {
	return path.Join(s.id, fmt.Sprintf("scene_%02d%s", index+1, imageExtension(mimeType)))
}

func (s *session) audioName(index int) string {
	return path.Join(s.id, fmt.Sprintf("scene_%02d.wav", index+1))
}

func (s *session) manifestName() string {
	return path.Join(s.id, "storyboard.json")
}

func imageExtension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

func sanitizeForPath(s string) string {
	s = strings.ToLower(s)
	s = sanitizeRegex.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
