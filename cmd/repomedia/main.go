package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/repomedia/repomedia/internal/config"
	"github.com/repomedia/repomedia/internal/gallery"
	"github.com/repomedia/repomedia/internal/remote"
	"github.com/repomedia/repomedia/internal/resolve"
	"github.com/repomedia/repomedia/internal/tree"
	"github.com/repomedia/repomedia/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.repomedia.app")
	myWindow := myApp.NewWindow("Repo Media")
	myWindow.Resize(fyne.NewSize(1000, 700))

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
