package convert

import (
	"context"

	"github.com/ytget/picshift/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionTask))
	SetAutoOpenFolder(enabled bool)
	Convert(ctx context.Context, req model.ConversionRequest) (*model.OutputArtifact, error)
	GetTask(taskID string) (*model.ConversionTask, bool)
	GetAllTasks() []*model.ConversionTask
	ClearHistory() int
}

var _ Converter = (*Service)(nil)
