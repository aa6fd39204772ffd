package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names tried when xdg-open is missing or fails
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNoFileManager is returned when no file browser could be launched
var ErrNoFileManager = errors.New("no suitable file manager found")

// FolderOpener opens a directory in the host's file browser
type FolderOpener interface {
	OpenFolder(dir string) error
}

// CommandRunner runs an external program and waits for it
type CommandRunner func(name string, args ...string) error

// RunCommand is the default CommandRunner
func RunCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// NewFolderOpener returns the opener for goos; pass runtime.GOOS in production
func NewFolderOpener(goos string) FolderOpener {
	return newFolderOpener(goos, RunCommand, exec.LookPath)
}

// NewSystemFolderOpener returns the opener for the running OS
func NewSystemFolderOpener() FolderOpener {
	return NewFolderOpener(runtime.GOOS)
}

func newFolderOpener(goos string, run CommandRunner, lookPath func(string) (string, error)) FolderOpener {
	switch goos {
	case OSWindows:
		return &explorerOpener{run: run}
	case OSDarwin:
		return &finderOpener{run: run}
	default:
		return &xdgOpener{run: run, lookPath: lookPath}
	}
}

// explorerOpener opens directories in Windows Explorer
type explorerOpener struct {
	run CommandRunner
}

// OpenFolder runs explorer; its exit status is 1 even on success, so only
// failures to start the process count
func (o *explorerOpener) OpenFolder(dir string) error {
	absDir, err := absoluteDir(dir)
	if err != nil {
		return err
	}
	err = o.run(ExplorerCommand, absDir)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

// finderOpener opens directories in Finder on macOS
type finderOpener struct {
	run CommandRunner
}

func (o *finderOpener) OpenFolder(dir string) error {
	absDir, err := absoluteDir(dir)
	if err != nil {
		return err
	}
	return o.run(OpenCommand, absDir)
}

// xdgOpener opens directories on Linux and other unix desktops
type xdgOpener struct {
	run      CommandRunner
	lookPath func(string) (string, error)
}

func (o *xdgOpener) OpenFolder(dir string) error {
	absDir, err := absoluteDir(dir)
	if err != nil {
		return err
	}

	// Try xdg-open first (most common)
	xdgErr := o.run(XDGOpenCommand, absDir)
	if xdgErr == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := o.lookPath(fm); err == nil {
			return o.run(fm, absDir)
		}
	}

	return fmt.Errorf("%w: %v", ErrNoFileManager, xdgErr)
}

// absoluteDir resolves dir to an absolute path and checks it is a directory
func absoluteDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return "", fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", absDir)
	}
	return absDir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CopyablePath returns the absolute form of path for clipboard use, or path itself
func CopyablePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
