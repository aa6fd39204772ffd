package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/picshift/internal/convert"
	"github.com/ytget/picshift/internal/logging"
	"github.com/ytget/picshift/internal/platform"
	"github.com/ytget/picshift/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.picshift"
	AppName = "PicShift"

	WindowWidth  = 440
	WindowHeight = 600
)

func main() {
	log := logging.Setup(logging.Options{LogFile: true})
	log.WithField("version", version).Infof("%s starting", AppName)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	opener := platform.NewSystemFolderOpener()
	converter := convert.NewService(opener)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, converter, opener)

	// Show and run
	myWindow.ShowAndRun()
}
