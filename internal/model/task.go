package model

import (
	"fmt"
	"strings"
	"time"
)

// ConversionRequest is the immutable input of one conversion
type ConversionRequest struct {
	InputPath string
	OutputDir string // empty means the input's own directory
	Format    ImageFormat
	SizeSpec  string // comma-separated sizes, e.g. "16,32,64"
}

// OutputArtifact describes the file produced by a successful conversion
type OutputArtifact struct {
	Path             string
	Format           ImageFormat
	Sizes            SizeSet // frame sizes written, ascending
	Width            int     // primary frame width
	Height           int     // primary frame height
	SavedToSourceDir bool
	Advisories       []string // non-fatal notes for the user
	OpenFolderErr    error    // set when revealing the output folder failed
}

// HasWarnings reports whether the user should see advisories or a folder error
func (a *OutputArtifact) HasWarnings() bool {
	return len(a.Advisories) > 0 || a.OpenFolderErr != nil
}

// ConversionTask is one entry of the in-memory conversion history
type ConversionTask struct {
	ID         string
	Request    ConversionRequest
	Status     TaskStatus
	Artifact   *OutputArtifact
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetElapsedString returns the conversion duration as "1.25s", or "—" while unfinished
func (ct *ConversionTask) GetElapsedString() string {
	if ct.FinishedAt.IsZero() || ct.StartedAt.IsZero() {
		return "—"
	}
	elapsed := ct.FinishedAt.Sub(ct.StartedAt)
	if elapsed < time.Second {
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", elapsed.Seconds())
}

// GetDisplayTitle returns "input.png → ICO", falling back to the raw input path
func (ct *ConversionTask) GetDisplayTitle() string {
	name := baseName(ct.Request.InputPath)
	if name == "" {
		return string(ct.Request.Format)
	}
	if ct.Request.Format == "" {
		return name
	}
	return name + " → " + string(ct.Request.Format)
}

// GetOutputPath returns the artifact path, or "" if nothing was written
func (ct *ConversionTask) GetOutputPath() string {
	if ct.Artifact == nil {
		return ""
	}
	return ct.Artifact.Path
}

// baseName extracts the file name, supporting both / and \ separators
func baseName(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
