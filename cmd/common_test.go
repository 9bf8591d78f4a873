package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.txt")
	if err := os.WriteFile(path, []byte("  The hero drew his sword.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		text    string
		file    string
		want    string
		wantErr bool
	}{
		{name: "flagWins", text: "inline", file: path, want: "inline"},
		{name: "fromFile", file: path, want: "The hero drew his sword."},
		{name: "missingFile", file: "/nonexistent/story.txt", wantErr: true},
		{name: "nothing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readText(tt.text, tt.file)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("readText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadImage(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "ref.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(pngPath, png, 0644); err != nil {
		t.Fatal(err)
	}
	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readImage(pngPath)
	if err != nil {
		t.Fatalf("readImage(png) error = %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("readImage(png) = %q", got)
	}

	uri := "data:image/jpeg;base64,AAEC"
	if got, _ := readImage(uri); got != uri {
		t.Errorf("readImage(data uri) = %q, want passthrough", got)
	}

	if got, err := readImage(""); err != nil || got != "" {
		t.Errorf("readImage(\"\") = %q, %v", got, err)
	}

	if _, err := readImage(txtPath); err == nil {
		t.Error("readImage(text file) should fail")
	}
}

func TestPositiveInt(t *testing.T) {
	for _, s := range []string{"1", "8"} {
		if err := positiveInt(s); err != nil {
			t.Errorf("positiveInt(%q) error = %v", s, err)
		}
	}
	for _, s := range []string{"0", "-2", "abc", ""} {
		if err := positiveInt(s); err == nil {
			t.Errorf("positiveInt(%q) should fail", s)
		}
	}
}
