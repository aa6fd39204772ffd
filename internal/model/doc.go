package model

// Package model defines the domain values shared by the converter, the UI and the
// CLI: image formats and their size bounds, parsed size sets, conversion requests,
// produced artifacts, and history tasks with their status enum.
