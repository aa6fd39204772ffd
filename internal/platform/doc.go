package platform

// Package platform contains OS integration glue: opening a directory in the host
// file browser (Explorer, Finder, xdg-open and common Linux file managers) and
// small filesystem helpers.
