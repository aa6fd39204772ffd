package ui

import (
	"context"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/picshift/internal/config"
	"github.com/ytget/picshift/internal/convert"
	"github.com/ytget/picshift/internal/logging"
	"github.com/ytget/picshift/internal/model"
	"github.com/ytget/picshift/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	converter    convert.Converter
	opener       platform.FolderOpener
	settings     *config.Settings
	localization *Localization
	log          logrus.FieldLogger

	// Conversion form
	titleLabel      *widget.Label
	inputEntry      *widget.Entry
	selectInputBtn  *widget.Button
	outputEntry     *widget.Entry
	selectOutputBtn *widget.Button
	sourceFolderBtn *widget.Button
	convertToLabel  *widget.Label
	formatRadio     *widget.RadioGroup
	sizesLabel      *widget.Label
	sizeEntry       *widget.Entry
	sizeHint        *widget.Label
	convertBtn      *widget.Button
	statusLabel     *widget.Label

	// History, newest first
	historyLabel    *widget.Label
	clearHistoryBtn *widget.Button
	historyList     *widget.List
	history         []*model.ConversionTask
	historyMutex    sync.RWMutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converter convert.Converter, opener platform.FolderOpener) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		converter:    converter,
		opener:       opener,
		settings:     settings,
		localization: localization,
		log:          logging.Logger().WithField("component", "ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for conversion updates
	ui.converter.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	ui.log.Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	var header fyne.CanvasObject = ui.titleLabel
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewCenter(container.NewHBox(logoImage, ui.titleLabel))
	}

	// Source and destination pickers
	ui.selectInputBtn = widget.NewButtonWithIcon(l.GetText(KeySelectImage), theme.FileImageIcon(), ui.onSelectInput)
	ui.selectInputBtn.Importance = widget.HighImportance
	ui.selectOutputBtn = widget.NewButtonWithIcon(l.GetText(KeySelectOutputDir), theme.FolderOpenIcon(), ui.onSelectOutput)

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(l.GetText(KeyInputPlaceholder))

	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder(l.GetText(KeyOutputPlaceholder))
	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())

	ui.sourceFolderBtn = widget.NewButton(l.GetText(KeyUseSourceFolder), ui.onUseSourceFolder)
	ui.sourceFolderBtn.Importance = widget.LowImportance

	// Target format
	ui.convertToLabel = widget.NewLabel(l.GetText(KeyConvertTo))
	formatOptions := make([]string, 0, len(model.AllFormats()))
	for _, f := range ui.settings.GetFormatOptions() {
		formatOptions = append(formatOptions, f.String())
	}
	ui.formatRadio = widget.NewRadioGroup(formatOptions, ui.onFormatChanged)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true

	// Sizes; Enter converts
	ui.sizesLabel = widget.NewLabel(l.GetText(KeySizes))
	ui.sizeEntry = widget.NewEntry()
	ui.sizeEntry.SetText(ui.settings.GetSizeSpec())
	ui.sizeEntry.OnSubmitted = func(string) {
		ui.onConvertClick()
	}
	ui.sizeHint = widget.NewLabel("")
	ui.sizeHint.Importance = widget.LowImportance
	ui.sizeHint.Wrapping = fyne.TextWrapWord

	ui.formatRadio.SetSelected(ui.settings.GetTargetFormat().String())

	ui.convertBtn = widget.NewButtonWithIcon(l.GetText(KeyConvert), theme.MediaPlayIcon(), ui.onConvertClick)
	ui.convertBtn.Importance = widget.SuccessImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	// History list
	ui.historyLabel = widget.NewLabelWithStyle(l.GetText(KeyHistory), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.clearHistoryBtn = widget.NewButtonWithIcon(l.GetText(KeyClearHistory), theme.DeleteIcon(), ui.onClearHistory)
	ui.clearHistoryBtn.Importance = widget.LowImportance

	ui.historyList = widget.NewList(
		ui.historyLength,
		func() fyne.CanvasObject { return ui.createHistoryItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)

	historyMin := canvas.NewRectangle(color.Transparent)
	historyMin.SetMinSize(fyne.NewSize(RowMinWidth, HistoryMinHeight))

	form := container.NewVBox(
		header,
		container.NewGridWithColumns(2, ui.selectInputBtn, ui.selectOutputBtn),
		container.NewBorder(nil, nil, widget.NewIcon(theme.FileImageIcon()), nil, ui.inputEntry),
		container.NewBorder(nil, nil, widget.NewIcon(theme.FolderIcon()), ui.sourceFolderBtn, ui.outputEntry),
		widget.NewSeparator(),
		ui.convertToLabel,
		container.NewCenter(ui.formatRadio),
		ui.sizesLabel,
		ui.sizeEntry,
		ui.sizeHint,
		ui.convertBtn,
		ui.statusLabel,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, ui.historyLabel, ui.clearHistoryBtn),
	)

	content := container.NewBorder(form, nil, nil, nil, container.NewStack(historyMin, ui.historyList))
	ui.window.SetContent(content)

	// Files dropped anywhere on the window become the input
	ui.window.SetOnDropped(ui.onDropped)

	// Enter outside any entry also converts
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			ui.onConvertClick()
		}
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeySelectImage), ui.onSelectInput),
		fyne.NewMenuItem(l.GetText(KeySelectOutputDir), ui.onSelectOutput),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeyClearHistory), ui.onClearHistory),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.titleLabel.SetText(l.GetText(KeyAppTitle))
	ui.selectInputBtn.SetText(l.GetText(KeySelectImage))
	ui.selectOutputBtn.SetText(l.GetText(KeySelectOutputDir))
	ui.sourceFolderBtn.SetText(l.GetText(KeyUseSourceFolder))
	ui.inputEntry.SetPlaceHolder(l.GetText(KeyInputPlaceholder))
	ui.outputEntry.SetPlaceHolder(l.GetText(KeyOutputPlaceholder))
	ui.convertToLabel.SetText(l.GetText(KeyConvertTo))
	ui.sizesLabel.SetText(l.GetText(KeySizes))
	ui.convertBtn.SetText(l.GetText(KeyConvert))
	ui.historyLabel.SetText(l.GetText(KeyHistory))
	ui.clearHistoryBtn.SetText(l.GetText(KeyClearHistory))
	ui.updateSizeHint(model.ImageFormat(ui.formatRadio.Selected))

	ui.historyList.Refresh()
}

// buildRequest snapshots the form into an immutable conversion request
func (ui *RootUI) buildRequest() model.ConversionRequest {
	return model.ConversionRequest{
		InputPath: strings.TrimSpace(ui.inputEntry.Text),
		OutputDir: strings.TrimSpace(ui.outputEntry.Text),
		Format:    model.ImageFormat(ui.formatRadio.Selected),
		SizeSpec:  ui.sizeEntry.Text,
	}
}

// onConvertClick runs one conversion with the current form state
func (ui *RootUI) onConvertClick() {
	req := ui.buildRequest()
	ui.rememberRequest(req)
	ui.converter.SetAutoOpenFolder(ui.settings.GetAutoOpenFolder())

	ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
	ui.convertBtn.Disable()
	defer ui.convertBtn.Enable()

	artifact, err := ui.converter.Convert(context.Background(), req)
	if err != nil {
		title, message := ui.describeError(req, err)
		ui.statusLabel.SetText(message)
		ui.showMessage(theme.ErrorIcon(), title, message)
		return
	}

	ui.showConversionResult(artifact)
}

// rememberRequest persists the form state for the next launch
func (ui *RootUI) rememberRequest(req model.ConversionRequest) {
	if req.Format.IsValid() {
		ui.settings.SetTargetFormat(req.Format)
	}
	if strings.TrimSpace(req.SizeSpec) != "" {
		ui.settings.SetSizeSpec(req.SizeSpec)
	}
	ui.settings.SetOutputDirectory(req.OutputDir)
}

// describeError picks the dialog title and message for a conversion error
func (ui *RootUI) describeError(req model.ConversionRequest, err error) (title, message string) {
	l := ui.localization
	switch {
	case errors.Is(err, convert.ErrMissingInput):
		return l.GetText(KeyMissingFileTitle), l.GetText(KeyMissingFile)
	case errors.Is(err, convert.ErrInvalidSizeSpec):
		return l.GetText(KeyInvalidSizesTitle), l.GetTextf(KeyInvalidSizes, req.Format, req.Format.SizeBounds())
	case errors.Is(err, convert.ErrUnsupportedFormat):
		return l.GetText(KeyUnsupportedTitle), l.GetText(KeyUnsupported)
	default:
		return l.GetText(KeyConversionErrTitle), l.GetTextf(KeyConversionErr, err)
	}
}

// showConversionResult reports a written file plus any advisories or folder error
func (ui *RootUI) showConversionResult(artifact *model.OutputArtifact) {
	l := ui.localization

	status := l.GetTextf(KeyConverted, artifact.Format, artifact.Path)
	if artifact.SavedToSourceDir {
		status += "\n" + l.GetText(KeySavedInSource)
	}
	ui.statusLabel.SetText(status)

	ui.app.SendNotification(&fyne.Notification{
		Title:   l.GetText(KeyConversionDone),
		Content: filepath.Base(artifact.Path),
	})

	if len(artifact.Advisories) > 0 {
		ui.showMessage(theme.WarningIcon(), l.GetText(KeySizeWarningTitle), strings.Join(artifact.Advisories, "\n"))
	}
	if artifact.OpenFolderErr != nil {
		ui.showMessage(theme.WarningIcon(), l.GetText(KeyOpenFolderErrTitle), l.GetTextf(KeyOpenFolderErr, artifact.OpenFolderErr))
	}
}

// showMessage shows a modal message with an icon
func (ui *RootUI) showMessage(icon fyne.Resource, title, message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(MessageDialogWidth, 0))

	content := container.NewBorder(nil, nil, widget.NewIcon(icon), nil, container.NewStack(width, label))
	dialog.NewCustom(title, ui.localization.GetText(KeyOK), content, ui.window).Show()
}

// onSelectInput opens a file dialog filtered to supported images
func (ui *RootUI) onSelectInput() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.log.WithError(err).Warn("file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		ui.setInputPath(reader.URI().Path(), KeySelected)
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter(model.InputExtensions()))
	d.Show()
}

// onSelectOutput opens a folder dialog for the output directory
func (ui *RootUI) onSelectOutput() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.log.WithError(err).Warn("folder dialog failed")
			return
		}
		if uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
		ui.statusLabel.SetText(ui.localization.GetTextf(KeyOutputSet, filepath.Base(uri.Path())))
	}, ui.window)
}

// onUseSourceFolder clears the output directory so files land next to the input
func (ui *RootUI) onUseSourceFolder() {
	ui.outputEntry.SetText("")
	ui.statusLabel.SetText(ui.localization.GetText(KeyOutputReset))
}

// onDropped takes the first supported file of a drop as the input
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri != nil {
			paths = append(paths, uri.Path())
		}
	}

	path, ok := convert.FirstSupported(paths)
	if !ok {
		ui.log.WithField("count", len(paths)).Info("drop ignored, no supported file")
		ui.statusLabel.SetText(ui.localization.GetText(KeyOnlySupported))
		return
	}
	ui.setInputPath(path, KeyFileDropped)
}

func (ui *RootUI) setInputPath(path, statusKey string) {
	ui.inputEntry.SetText(path)
	ui.statusLabel.SetText(ui.localization.GetTextf(statusKey, filepath.Base(path)))
}

// onFormatChanged updates the size hint for the selected format
func (ui *RootUI) onFormatChanged(selected string) {
	format := model.ImageFormat(selected)
	if !format.IsValid() {
		return
	}
	ui.updateSizeHint(format)
}

func (ui *RootUI) updateSizeHint(format model.ImageFormat) {
	if ui.sizeHint == nil || !format.IsValid() {
		return
	}
	key := KeySizesHintSingle
	if format.IsMultiSize() {
		key = KeySizesHintMulti
	}
	ui.sizeHint.SetText(ui.localization.GetTextf(key, format.SizeBounds()))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running UI
func (ui *RootUI) applySettings() {
	if ui.settings.GetLanguage() != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.createMenu()
	}
	ui.refreshUITexts()

	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
	ui.sizeEntry.SetText(ui.settings.GetSizeSpec())
	ui.reloadHistory()
	ui.historyList.Refresh()

	ui.statusLabel.SetText(ui.localization.GetText(KeySettingsSaved))
}

// createHistoryItem creates a new history row widget
func (ui *RootUI) createHistoryItem() fyne.CanvasObject {
	row := NewHistoryRow(nil, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onCopyPath)
	return row
}

// updateHistoryItem binds a recycled row to the task at id
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, item fyne.CanvasObject) {
	task := ui.historyAt(id)
	row, ok := item.(*HistoryRow)
	if task == nil || !ok {
		return
	}
	row.SetCallbacks(ui.onRevealFile, ui.onCopyPath)
	row.refreshTexts()
	row.UpdateTask(task)
}

func (ui *RootUI) historyLength() int {
	ui.historyMutex.RLock()
	defer ui.historyMutex.RUnlock()
	return len(ui.history)
}

func (ui *RootUI) historyAt(id int) *model.ConversionTask {
	ui.historyMutex.RLock()
	defer ui.historyMutex.RUnlock()
	if id < 0 || id >= len(ui.history) {
		return nil
	}
	return ui.history[id]
}

// reloadHistory copies finished tasks from the converter, newest first, up to the limit
func (ui *RootUI) reloadHistory() {
	tasks := ui.converter.GetAllTasks()
	limit := ui.settings.GetHistoryLimit()

	history := make([]*model.ConversionTask, 0, limit)
	for i := len(tasks) - 1; i >= 0 && len(history) < limit; i-- {
		if tasks[i].Status.IsFinished() {
			history = append(history, tasks[i])
		}
	}

	ui.historyMutex.Lock()
	ui.history = history
	ui.historyMutex.Unlock()
}

// onTaskUpdate handles task updates from the conversion service
func (ui *RootUI) onTaskUpdate(task *model.ConversionTask) {
	ui.log.WithFields(logrus.Fields{
		"task":   task.ID,
		"status": task.Status,
	}).Debug("task update")

	if !task.Status.IsFinished() {
		return
	}
	ui.reloadHistory()
	fyne.Do(func() {
		ui.historyList.Refresh()
	})
}

// onClearHistory drops finished conversions from the list
func (ui *RootUI) onClearHistory() {
	removed := ui.converter.ClearHistory()
	ui.log.WithField("removed", removed).Debug("history cleared")
	ui.reloadHistory()
	ui.historyList.Refresh()
}

// onRevealFile opens the folder holding filePath
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPathUnavailable))
		return
	}
	if err := ui.opener.OpenFolder(filepath.Dir(filePath)); err != nil {
		ui.log.WithError(err).WithField("path", filePath).Warn("failed to reveal file")
		ui.showMessage(theme.WarningIcon(), ui.localization.GetText(KeyOpenFolderErrTitle),
			ui.localization.GetTextf(KeyOpenFolderErr, err))
	}
}

// onCopyPath copies the absolute output path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if filePath == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPathUnavailable))
		return
	}
	ui.app.Clipboard().SetContent(platform.CopyablePath(filePath))
	ui.statusLabel.SetText(ui.localization.GetText(KeyPathCopied))
}
