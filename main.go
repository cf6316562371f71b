package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/repomedia/repomedia/internal/config"
	"github.com/repomedia/repomedia/internal/gallery"
	"github.com/repomedia/repomedia/internal/remote"
	"github.com/repomedia/repomedia/internal/resolve"
	"github.com/repomedia/repomedia/internal/tree"
	"github.com/repomedia/repomedia/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.repomedia.app"
	AppName = "Repo Media"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	timeout := settings.GetRequestTimeout()

	client := remote.NewClient(timeout)
	listings := remote.NewListingCache(client)
	resolver := resolve.NewResolver(listings, settings.GetFallbackManifestPath())
	treeModel := tree.NewModel(listings)
	state := gallery.NewState()
	loader := ui.NewThumbnailLoader(timeout, settings.GetThumbnailWorkers())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, treeModel, resolver, state, loader)
	myWindow.SetContent(rootUI.Content())
	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
