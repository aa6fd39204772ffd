// Command picshift-cli converts images from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ytget/picshift/internal/convert"
	"github.com/ytget/picshift/internal/logging"
	"github.com/ytget/picshift/internal/model"
	"github.com/ytget/picshift/internal/platform"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet()
	fs.SetOutput(stderr)

	cfg, files, err := loadConfig(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if len(files) == 0 {
		fs.Usage()
		return exitUsage
	}

	log := logging.Setup(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: stderr})

	format, err := model.ParseImageFormat(cfg.Format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := convert.NewService(platform.NewSystemFolderOpener())
	svc.SetLogger(log)
	svc.SetAutoOpenFolder(cfg.Open)

	return convertAll(ctx, svc, cfg, format, files, stdout, log)
}

// convertAll converts files one by one and prints each written path.
// A bad size list fails every file the same way, so it stops the batch.
func convertAll(ctx context.Context, conv convert.Converter, cfg *cliConfig, format model.ImageFormat,
	files []string, stdout io.Writer, log logrus.FieldLogger) int {
	failed := 0
	for i, file := range files {
		if ctx.Err() != nil {
			log.WithField("remaining", len(files)-i).Warn("interrupted")
			return exitFailed
		}

		artifact, err := conv.Convert(ctx, cfg.request(file, format))
		if err != nil {
			failed++
			if errors.Is(err, convert.ErrInvalidSizeSpec) {
				return exitFailed
			}
			continue
		}

		fmt.Fprintln(stdout, artifact.Path)
	}

	if failed > 0 {
		log.WithFields(logrus.Fields{"failed": failed, "total": len(files)}).Error("some conversions failed")
		return exitFailed
	}
	return exitOK
}
