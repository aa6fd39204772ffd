package convert

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/picshift/internal/logging"
	"github.com/ytget/picshift/internal/model"
	"github.com/ytget/picshift/internal/platform"
)

// TaskIDPrefix prefixes every conversion task ID
const TaskIDPrefix = "convert-"

// Service runs conversions and keeps their history
type Service struct {
	tasks      map[string]*model.ConversionTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.ConversionTask) // callback for UI updates

	opener   platform.FolderOpener
	autoOpen bool
	log      logrus.FieldLogger
}

// NewService creates a conversion service; opener may be nil to disable folder reveal
func NewService(opener platform.FolderOpener) *Service {
	return &Service{
		tasks:  make(map[string]*model.ConversionTask),
		opener: opener,
		log:    logging.Logger(),
	}
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(log logrus.FieldLogger) {
	s.log = log
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ConversionTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetAutoOpenFolder toggles revealing the output directory after a conversion
func (s *Service) SetAutoOpenFolder(enabled bool) {
	s.tasksMutex.Lock()
	s.autoOpen = enabled
	s.tasksMutex.Unlock()
}

// Convert runs one conversion synchronously. Validation errors are returned before
// any file is touched; everything after that is wrapped in ErrConversionFailed.
func (s *Service) Convert(ctx context.Context, req model.ConversionRequest) (*model.OutputArtifact, error) {
	task := &model.ConversionTask{
		ID:        generateTaskID(),
		Request:   req,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	entry := s.log.WithFields(logrus.Fields{
		"task":   task.ID,
		"input":  req.InputPath,
		"format": req.Format,
	})

	s.setStatus(task, model.TaskStatusConverting)
	artifact, err := s.convert(ctx, req, entry)
	if err != nil {
		entry.WithError(err).Error("conversion failed")
		s.setTaskError(task, err)
		return nil, err
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Artifact = artifact
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	entry.WithFields(logrus.Fields{
		"output":  artifact.Path,
		"sizes":   artifact.Sizes.String(),
		"elapsed": task.GetElapsedString(),
	}).Info("conversion completed")

	return artifact, nil
}

func (s *Service) convert(ctx context.Context, req model.ConversionRequest, entry logrus.FieldLogger) (*model.OutputArtifact, error) {
	if strings.TrimSpace(req.InputPath) == "" {
		return nil, ErrMissingInput
	}
	inFormat, ok := model.FormatFromPath(req.InputPath)
	if !ok {
		return nil, fmt.Errorf("%w: input file %s", ErrUnsupportedFormat, req.InputPath)
	}
	if !req.Format.IsValid() {
		return nil, fmt.Errorf("%w: target %q", ErrUnsupportedFormat, req.Format)
	}

	plan, err := planSizes(req.Format, req.SizeSpec)
	if err != nil {
		return nil, err
	}

	outDir, fromSource := resolveOutputDir(req)
	target := outputPath(outDir, req.InputPath, req.Format)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	src, err := decodeSource(req.InputPath, inFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrConversionFailed, req.InputPath, err)
	}
	entry.WithField("source", fmt.Sprintf("%dx%d", src.Bounds().Dx(), src.Bounds().Dy())).Debug("decoded source")

	frames, err := renderFrames(ctx, src, plan.sizes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	if err := platform.CreateDirectoryIfNotExists(outDir); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %w", ErrConversionFailed, err)
	}
	err = writeFileAtomic(target, func(w io.Writer) error {
		return encodeFrames(w, req.Format, frames)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to write %s: %w", ErrConversionFailed, target, err)
	}

	sizes := plan.sizes
	if sizes.IsEmpty() {
		sizes = model.SizeSet{frames[0].Bounds().Dx()}
	}
	artifact := &model.OutputArtifact{
		Path:             target,
		Format:           req.Format,
		Sizes:            sizes,
		Width:            frames[0].Bounds().Dx(),
		Height:           frames[0].Bounds().Dy(),
		SavedToSourceDir: fromSource,
		Advisories:       plan.advisories,
	}
	for _, advisory := range plan.advisories {
		entry.Warn(advisory)
	}

	s.tasksMutex.RLock()
	autoOpen := s.autoOpen
	s.tasksMutex.RUnlock()
	if autoOpen && s.opener != nil {
		if err := s.opener.OpenFolder(outDir); err != nil {
			entry.WithError(err).Warn("failed to open output folder")
			artifact.OpenFolderErr = err
		}
	}

	return artifact, nil
}

// GetTask returns a conversion task by ID
func (s *Service) GetTask(taskID string) (*model.ConversionTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// GetAllTasks returns the history, oldest first
func (s *Service) GetAllTasks() []*model.ConversionTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.ConversionTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	s.tasksMutex.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// ClearHistory removes finished tasks and returns how many were removed
func (s *Service) ClearHistory() int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	removed := 0
	for id, task := range s.tasks {
		if task.Status.IsFinished() {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed
}

func (s *Service) setStatus(task *model.ConversionTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ConversionTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ConversionTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
