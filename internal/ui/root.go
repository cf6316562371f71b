package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/repomedia/repomedia/internal/gallery"
	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
	"github.com/repomedia/repomedia/internal/remote"
	"github.com/repomedia/repomedia/internal/resolve"
	"github.com/repomedia/repomedia/internal/tree"
)

// RootUI assembles the main window: the folder tree on the left and the
// filterable media gallery on the right, with a status line underneath.
type RootUI struct {
	window fyne.Window

	treeModel *tree.Model
	resolver  *resolve.Resolver
	state     *gallery.State
	loader    *ThumbnailLoader
	viewer    *Viewer

	treeWidget  *widget.Tree
	grid        *widget.GridWrap
	searchEntry *widget.Entry
	statusLabel *widget.Label

	// visible mirrors the gallery state for the grid callbacks. Written on
	// the UI thread only.
	visible model.MediaSet
}

// NewRootUI wires the widgets to the models and hands back the assembled UI.
func NewRootUI(window fyne.Window, treeModel *tree.Model, resolver *resolve.Resolver, state *gallery.State, loader *ThumbnailLoader) *RootUI {
	ui := &RootUI{
		window:    window,
		treeModel: treeModel,
		resolver:  resolver,
		state:     state,
		loader:    loader,
	}
	ui.viewer = NewViewer(window, loader)

	ui.buildTree()
	ui.buildGallery()

	ui.statusLabel = widget.NewLabel(StatusIdle)
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	state.SetOnChange(func(set model.MediaSet) {
		fyne.Do(func() {
			ui.visible = set
			ui.grid.Refresh()
		})
	})

	return ui
}

// Content returns the window content. Call once during startup.
func (ui *RootUI) Content() fyne.CanvasObject {
	right := container.NewBorder(ui.searchEntry, nil, nil, nil, ui.grid)
	split := container.NewHSplit(ui.treeWidget, right)
	split.SetOffset(TreePaneSplit)
	return container.NewBorder(nil, ui.statusLabel, nil, nil, split)
}

// Start expands the repository root so the tree has content on first paint.
func (ui *RootUI) Start() {
	root := ui.treeModel.Root()
	go func() {
		ui.treeModel.Toggle(context.Background(), root)
		fyne.Do(ui.treeWidget.Refresh)
	}()
}

func (ui *RootUI) buildTree() {
	ui.treeWidget = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			return ui.treeModel.ChildPaths(uid)
		},
		func(uid widget.TreeNodeID) bool {
			node, ok := ui.treeModel.NodeByPath(uid)
			return ok && node.IsDir()
		},
		func(bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, _ bool, obj fyne.CanvasObject) {
			ui.updateTreeLabel(uid, obj.(*widget.Label))
		},
	)
	ui.treeWidget.OnBranchOpened = func(uid widget.TreeNodeID) {
		ui.expandBranch(uid)
	}
	ui.treeWidget.OnBranchClosed = func(uid widget.TreeNodeID) {
		if node, ok := ui.treeModel.NodeByPath(uid); ok {
			ui.treeModel.Toggle(context.Background(), node)
		}
	}
	ui.treeWidget.OnSelected = func(uid widget.TreeNodeID) {
		node, ok := ui.treeModel.NodeByPath(uid)
		if !ok {
			return
		}
		if node.IsDir() {
			if ui.treeModel.State(uid) == tree.StateExpanded {
				ui.treeWidget.CloseBranch(uid)
			} else {
				ui.treeWidget.OpenBranch(uid)
			}
			return
		}
		ui.onFileSelected(uid)
	}
}

func (ui *RootUI) updateTreeLabel(uid widget.TreeNodeID, label *widget.Label) {
	node, ok := ui.treeModel.NodeByPath(uid)
	if !ok {
		label.SetText(uid)
		return
	}
	text := node.Entry.Name
	if uid == "" {
		text = RootNodeLabel
	}
	if ui.treeModel.State(uid) == tree.StateExpanding {
		text += TreeLoadingSuffix
	}
	label.Importance = widget.MediumImportance
	if node.NonMedia {
		label.Importance = widget.LowImportance
	}
	label.SetText(text)
}

// expandBranch fetches the branch listing off the UI thread. A second open
// while the fetch runs is a no-op; the model holds the expanding state.
func (ui *RootUI) expandBranch(uid widget.TreeNodeID) {
	node, ok := ui.treeModel.NodeByPath(uid)
	if !ok {
		return
	}
	ui.treeWidget.Refresh()
	go func() {
		ui.treeModel.Toggle(context.Background(), node)
		fyne.Do(ui.treeWidget.Refresh)
	}()
}

// onFileSelected resolves the selected file's folder into the gallery. The
// request token from Begin makes a late response for a superseded selection
// drop on the floor instead of clobbering the newer one.
func (ui *RootUI) onFileSelected(path string) {
	parent := model.ParentPath(path)
	token := ui.state.Begin(parent)
	ui.statusLabel.SetText("Loading " + displayPath(parent))

	go func() {
		set, err := ui.resolver.Resolve(context.Background(), parent)
		if err != nil {
			logging.Warn().Err(err).Str("path", parent).Msg("media resolution failed")
			fyne.Do(func() {
				if remote.IsUnavailable(err) {
					ui.statusLabel.SetText(StatusUnavailable)
				} else {
					ui.statusLabel.SetText(StatusIdle)
				}
			})
			return
		}
		fyne.Do(func() {
			if !ui.state.SetBase(token, set) {
				return
			}
			ui.statusLabel.SetText(displayPath(parent))
		})
	}()
}

func (ui *RootUI) buildGallery() {
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(SearchPlaceholder)
	ui.searchEntry.OnChanged = func(query string) {
		ui.state.ApplyQuery(query)
	}

	ui.grid = widget.NewGridWrap(
		func() int {
			return len(ui.visible)
		},
		func() fyne.CanvasObject {
			return newMediaCard(ui.loader, ui.openItem)
		},
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(ui.visible) {
				return
			}
			obj.(*mediaCard).SetItem(ui.visible[id])
		},
	)
}

func (ui *RootUI) openItem(item model.MediaItem) {
	ui.viewer.Open(item)
}

func displayPath(path string) string {
	if path == "" {
		return RootNodeLabel
	}
	return path
}
