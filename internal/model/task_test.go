package model

import (
	"errors"
	"testing"
	"time"
)

func TestConversionTask_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		finished time.Time
		expected string
	}{
		{time.Time{}, "—"},
		{start.Add(250 * time.Millisecond), "250ms"},
		{start.Add(1500 * time.Millisecond), "1.50s"},
		{start.Add(2 * time.Second), "2.00s"},
	}

	for _, test := range tests {
		task := &ConversionTask{StartedAt: start, FinishedAt: test.finished}
		result := task.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() with finished=%v = %s, expected %s", test.finished, result, test.expected)
		}
	}
}

func TestConversionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		input    string
		format   ImageFormat
		expected string
	}{
		{"/home/user/logo.png", FormatICO, "logo.png → ICO"},
		{`C:\icons\app.ico`, FormatPNG, "app.ico → PNG"},
		{"", FormatJPEG, "JPEG"},
		{"photo.jpg", "", "photo.jpg"},
	}

	for _, test := range tests {
		task := &ConversionTask{Request: ConversionRequest{InputPath: test.input, Format: test.format}}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with input='%s', format='%s' = '%s', expected '%s'",
				test.input, test.format, result, test.expected)
		}
	}
}

func TestConversionTask_GetOutputPath(t *testing.T) {
	task := &ConversionTask{ID: "convert-1", Status: TaskStatusError}
	if task.GetOutputPath() != "" {
		t.Errorf("Expected empty output path for failed task, got '%s'", task.GetOutputPath())
	}

	task.Artifact = &OutputArtifact{Path: "/tmp/out.ico"}
	if task.GetOutputPath() != "/tmp/out.ico" {
		t.Errorf("Expected '/tmp/out.ico', got '%s'", task.GetOutputPath())
	}
}

func TestOutputArtifact_HasWarnings(t *testing.T) {
	artifact := &OutputArtifact{}
	if artifact.HasWarnings() {
		t.Error("Empty artifact should not report warnings")
	}

	artifact.Advisories = []string{"large frames"}
	if !artifact.HasWarnings() {
		t.Error("Artifact with advisories should report warnings")
	}

	artifact = &OutputArtifact{OpenFolderErr: errors.New("no file manager")}
	if !artifact.HasWarnings() {
		t.Error("Artifact with folder error should report warnings")
	}
}
