package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/picshift/internal/convert"
	"github.com/ytget/picshift/internal/model"
)

type stubOpener struct {
	dirs []string
	err  error
}

func (o *stubOpener) OpenFolder(dir string) error {
	o.dirs = append(o.dirs, dir)
	return o.err
}

func newTestUI(t *testing.T) (*RootUI, *stubOpener) {
	t.Helper()
	a := test.NewApp()
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	opener := &stubOpener{}
	return NewRootUI(w, a, convert.NewService(opener), opener), opener
}

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := 0; i < 32; i++ {
		img.SetNRGBA(i, i, color.NRGBA{R: 200, A: 255})
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestNewRootUI_Defaults(t *testing.T) {
	ui, _ := newTestUI(t)

	assert.Equal(t, "PicShift", ui.window.Title())
	assert.Equal(t, string(model.FormatICO), ui.formatRadio.Selected)
	assert.Equal(t, "64", ui.sizeEntry.Text)
	assert.Empty(t, ui.outputEntry.Text)
	assert.Contains(t, ui.sizeHint.Text, "16–1024")
	assert.Len(t, ui.formatRadio.Options, 5)
	assert.Zero(t, ui.historyLength())
}

func TestBuildRequest(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.inputEntry.SetText("  /images/logo.png ")
	ui.outputEntry.SetText("/icons ")
	ui.formatRadio.SetSelected("PNG")
	ui.sizeEntry.SetText("16, 32")

	assert.Equal(t, model.ConversionRequest{
		InputPath: "/images/logo.png",
		OutputDir: "/icons",
		Format:    model.FormatPNG,
		SizeSpec:  "16, 32",
	}, ui.buildRequest())
}

func TestFormatChangeUpdatesHint(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.formatRadio.SetSelected("JPEG")
	assert.Contains(t, ui.sizeHint.Text, "16–2048")

	ui.formatRadio.SetSelected("ICNS")
	assert.Contains(t, ui.sizeHint.Text, "16–1024")
}

func TestOnDropped_FirstSupportedFile(t *testing.T) {
	ui, _ := newTestUI(t)
	dir := t.TempDir()

	notes := filepath.Join(dir, "notes.txt")
	logo := filepath.Join(dir, "logo.png")
	photo := filepath.Join(dir, "photo.jpg")

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{
		storage.NewFileURI(notes),
		storage.NewFileURI(logo),
		storage.NewFileURI(photo),
	})

	assert.Equal(t, logo, ui.inputEntry.Text)
	assert.Equal(t, "File dropped: logo.png", ui.statusLabel.Text)
}

func TestOnDropped_Unsupported(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.inputEntry.SetText("/images/keep.png")

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI(filepath.Join(t.TempDir(), "anim.gif"))})

	assert.Equal(t, "/images/keep.png", ui.inputEntry.Text)
	assert.Equal(t, "Only PNG, ICO, JPEG, TIFF, or ICNS files are accepted.", ui.statusLabel.Text)
}

func TestConvertClick_WritesIcon(t *testing.T) {
	ui, opener := newTestUI(t)
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "logo.png")

	ui.inputEntry.SetText(src)
	ui.formatRadio.SetSelected("ICO")
	ui.sizeEntry.SetText("32,16")

	test.Tap(ui.convertBtn)

	out := filepath.Join(dir, "logo.ico")
	assert.FileExists(t, out)
	assert.Contains(t, ui.statusLabel.Text, "Converted to ICO")
	assert.Contains(t, ui.statusLabel.Text, out)
	assert.Contains(t, ui.statusLabel.Text, "(Output saved in source folder.)")
	assert.False(t, ui.convertBtn.Disabled())

	// auto-open is on by default
	assert.Equal(t, []string{dir}, opener.dirs)

	require.Equal(t, 1, ui.historyLength())
	assert.Equal(t, out, ui.historyAt(0).GetOutputPath())

	// form state is remembered
	assert.Equal(t, model.FormatICO, ui.settings.GetTargetFormat())
	assert.Equal(t, "32,16", ui.settings.GetSizeSpec())
}

func TestConvertClick_RespectsAutoOpenSetting(t *testing.T) {
	ui, opener := newTestUI(t)
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "logo.png")
	ui.settings.SetAutoOpenFolder(false)

	ui.inputEntry.SetText(src)
	ui.formatRadio.SetSelected("TIFF")
	ui.sizeEntry.SetText("")
	ui.onConvertClick()

	assert.FileExists(t, filepath.Join(dir, "logo.tiff"))
	assert.Empty(t, opener.dirs)
}

func TestConvertClick_InvalidSizes(t *testing.T) {
	ui, _ := newTestUI(t)
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "logo.png")

	ui.inputEntry.SetText(src)
	ui.formatRadio.SetSelected("ICO")
	ui.sizeEntry.SetText("5")
	ui.onConvertClick()

	assert.NoFileExists(t, filepath.Join(dir, "logo.ico"))
	assert.Contains(t, ui.statusLabel.Text, "ICO sizes (16–1024)")

	require.Equal(t, 1, ui.historyLength())
	assert.Equal(t, model.TaskStatusError, ui.historyAt(0).Status)
}

func TestConvertClick_MissingInput(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.onConvertClick()
	assert.Equal(t, "Please select a file to convert.", ui.statusLabel.Text)
}

func TestDescribeError(t *testing.T) {
	ui, _ := newTestUI(t)
	req := model.ConversionRequest{Format: model.FormatICNS}

	tests := []struct {
		err   error
		title string
	}{
		{convert.ErrMissingInput, "Missing File"},
		{fmt.Errorf("%w: \"5\"", convert.ErrInvalidSizeSpec), "Invalid Sizes"},
		{fmt.Errorf("%w: input file a.gif", convert.ErrUnsupportedFormat), "Unsupported Format"},
		{fmt.Errorf("%w: disk full", convert.ErrConversionFailed), "Conversion Error"},
		{errors.New("unexpected"), "Conversion Error"},
	}

	for _, tt := range tests {
		title, message := ui.describeError(req, tt.err)
		assert.Equal(t, tt.title, title, "error %v", tt.err)
		assert.NotEmpty(t, message)
	}

	_, message := ui.describeError(req, fmt.Errorf("%w: disk full", convert.ErrConversionFailed))
	assert.True(t, strings.HasSuffix(message, "disk full"), message)
}

func TestUseSourceFolder(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.outputEntry.SetText("/icons")

	test.Tap(ui.sourceFolderBtn)

	assert.Empty(t, ui.outputEntry.Text)
	assert.Empty(t, ui.buildRequest().OutputDir)
}

func TestLanguageChange(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.onLanguageChange("ru")

	assert.Equal(t, "Конвертировать", ui.convertBtn.Text)
	assert.Equal(t, "ru", ui.settings.GetLanguage())

	ui.onLanguageChange("pt")
	assert.Equal(t, "Converter", ui.convertBtn.Text)
}

func TestClearHistory(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.onConvertClick()
	require.Equal(t, 1, ui.historyLength())

	ui.onClearHistory()
	assert.Zero(t, ui.historyLength())
}

func TestHistoryLimit(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.settings.SetHistoryLimit(2)

	for i := 0; i < 3; i++ {
		ui.onConvertClick()
	}
	assert.Equal(t, 2, ui.historyLength())
}

func TestRevealAndCopyPath(t *testing.T) {
	ui, opener := newTestUI(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.ico")

	ui.onRevealFile(path)
	assert.Equal(t, []string{dir}, opener.dirs)

	ui.onCopyPath(path)
	assert.Equal(t, path, ui.app.Clipboard().Content())
	assert.Equal(t, "Path copied to clipboard", ui.statusLabel.Text)

	ui.onCopyPath("")
	assert.Equal(t, "File path not available", ui.statusLabel.Text)
}
