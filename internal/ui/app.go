package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/psy/internal/config"
	"github.com/ytget/psy/internal/doglist"
)

// Application identity
const (
	AppID   = "com.ytget.psy"
	AppName = "Psy"
)

// Run starts the Fyne application and blocks until the window is closed
func Run(version string) {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp.Preferences())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := NewRootUI(myWindow, myApp, doglist.NewService(), settings, version)
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}
