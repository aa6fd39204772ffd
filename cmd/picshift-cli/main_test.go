package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/picshift/internal/convert"
	"github.com/ytget/picshift/internal/model"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 48, 48))
	for i := 0; i < 48; i++ {
		img.SetNRGBA(i, 47-i, color.NRGBA{G: 180, A: 255})
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(&discard{})
	return l
}

func newTestService() *convert.Service {
	svc := convert.NewService(nil)
	svc.SetLogger(quietLogger())
	return svc
}

func TestRun_ConvertsFiles(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "logo.png")
	out := filepath.Join(dir, "icons")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--format", "ico", "--sizes", "16,32", "--out", out, src}, &stdout, &stderr)

	assert.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, filepath.Join(out, "logo.ico"), strings.TrimSpace(stdout.String()))
	assert.FileExists(t, filepath.Join(out, "logo.ico"))
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: picshift-cli")

	assert.Equal(t, exitOK, run([]string{"--help"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"--format", "gif", "a.png"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestConvertAll_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png")
	missing := filepath.Join(dir, "missing.png")

	var stdout bytes.Buffer
	cfg := &cliConfig{Sizes: "32"}
	code := convertAll(context.Background(), newTestService(), cfg, model.FormatPNG,
		[]string{missing, good}, &stdout, quietLogger())

	assert.Equal(t, exitFailed, code)
	assert.Equal(t, filepath.Join(dir, "good.png"), strings.TrimSpace(stdout.String()))
}

func TestConvertAll_InvalidSizesStopBatch(t *testing.T) {
	dir := t.TempDir()
	first := writePNG(t, dir, "first.png")
	second := writePNG(t, dir, "second.png")

	svc := newTestService()
	cfg := &cliConfig{Sizes: "5"}
	code := convertAll(context.Background(), svc, cfg, model.FormatICO,
		[]string{first, second}, &bytes.Buffer{}, quietLogger())

	assert.Equal(t, exitFailed, code)
	assert.Len(t, svc.GetAllTasks(), 1)
	assert.NoFileExists(t, filepath.Join(dir, "second.ico"))
}

func TestConvertAll_Interrupted(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "logo.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	code := convertAll(ctx, newTestService(), &cliConfig{Sizes: "32"}, model.FormatICO,
		[]string{src}, &stdout, quietLogger())

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stdout.String())
	assert.NoFileExists(t, filepath.Join(dir, "logo.ico"))
}
