package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/picshift/internal/model"
)

// HistoryRow renders one finished or running conversion in the history list
type HistoryRow struct {
	widget.BaseWidget

	task         *model.ConversionTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	statusLabel *widget.Label
	detailLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button // open containing folder
	copyBtn   *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onCopyPath func(filePath string)
}

// NewHistoryRow creates a new history row widget
func NewHistoryRow(task *model.ConversionTask, localization *Localization) *HistoryRow {
	if task == nil {
		task = &model.ConversionTask{Status: model.TaskStatusPending}
	}

	hr := &HistoryRow{
		task:         task,
		localization: localization,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.updateFromTask()
	return hr
}

// SetCallbacks sets the action callbacks
func (hr *HistoryRow) SetCallbacks(onReveal, onCopyPath func(filePath string)) {
	hr.onReveal = onReveal
	hr.onCopyPath = onCopyPath
}

// UpdateTask updates the row with new task data
func (hr *HistoryRow) UpdateTask(task *model.ConversionTask) {
	if task == nil {
		return
	}
	hr.task = task
	hr.updateFromTask()
	hr.Refresh()
}

func (hr *HistoryRow) createUI() {
	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	hr.statusLabel = widget.NewLabel("")
	hr.statusLabel.Alignment = fyne.TextAlignTrailing

	hr.detailLabel = widget.NewLabel("")
	hr.detailLabel.TextStyle = fyne.TextStyle{Monospace: true}
	hr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	// Read the task at click time, rows are recycled by the list
	hr.revealBtn = widget.NewButton(hr.localization.GetText(KeyReveal), func() {
		if path := hr.task.GetOutputPath(); path != "" && hr.onReveal != nil {
			hr.onReveal(path)
		}
	})
	hr.revealBtn.Importance = widget.MediumImportance

	hr.copyBtn = widget.NewButton(hr.localization.GetText(KeyCopyPath), func() {
		if path := hr.task.GetOutputPath(); path != "" && hr.onCopyPath != nil {
			hr.onCopyPath(path)
		}
	})
	hr.copyBtn.Importance = widget.MediumImportance
}

// updateFromTask updates UI components based on task state
func (hr *HistoryRow) updateFromTask() {
	hr.titleLabel.SetText(hr.task.GetDisplayTitle())

	switch hr.task.Status {
	case model.TaskStatusError:
		hr.statusLabel.Importance = widget.DangerImportance
		hr.statusLabel.SetText(IconError + " " + hr.task.Status.String())
	case model.TaskStatusCompleted:
		hr.statusLabel.Importance = widget.SuccessImportance
		if hr.task.Artifact != nil && hr.task.Artifact.HasWarnings() {
			hr.statusLabel.Importance = widget.WarningImportance
		}
		hr.statusLabel.SetText(IconDone + " " + hr.task.Status.String())
	default:
		hr.statusLabel.Importance = widget.MediumImportance
		hr.statusLabel.SetText(IconWorking + " " + hr.task.Status.String())
	}

	hr.detailLabel.SetText(historyDetail(hr.task))

	// Reveal and copy need a written file
	if hr.task.GetOutputPath() != "" {
		hr.revealBtn.Enable()
		hr.copyBtn.Enable()
	} else {
		hr.revealBtn.Disable()
		hr.copyBtn.Disable()
	}
}

// refreshTexts re-reads button captions after a language change
func (hr *HistoryRow) refreshTexts() {
	hr.revealBtn.SetText(hr.localization.GetText(KeyReveal))
	hr.copyBtn.SetText(hr.localization.GetText(KeyCopyPath))
}

// historyDetail renders "16,32,64 px · 120ms" or the error text
func historyDetail(task *model.ConversionTask) string {
	switch {
	case task.Status == model.TaskStatusError:
		return strings.ReplaceAll(task.LastError, "\n", " ")
	case task.Artifact != nil:
		return task.Artifact.Sizes.String() + " " + PixelSuffix + MiddleDotSeparator + task.GetElapsedString()
	default:
		return DashPlaceholder
	}
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(DetailLabelWidth, hr.detailLabel),
		fixedWidth(StatusLabelWidth, hr.statusLabel),
	)
	actions := container.NewHBox(hr.revealBtn, hr.copyBtn)
	right := container.NewBorder(nil, nil, nil, actions, info)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, right, hr.titleLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (hr *HistoryRow) MinSize() fyne.Size {
	hr.ExtendBaseWidget(hr)
	min := hr.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, RowMinWidth), fyne.Max(min.Height, RowMinHeight))
}
