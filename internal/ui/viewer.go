package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
	"github.com/repomedia/repomedia/internal/platform"
)

// Viewer shows a single media item in a modal popup over the main window.
// Images render full size in the popup; videos show their poster and are
// handed straight to the system player. Only one item is open at a time.
//
// Opening captures the window's focused element and key handler so that
// closing, by button or by Escape, restores the browse state exactly.
type Viewer struct {
	win    fyne.Window
	loader *ThumbnailLoader

	popup          *widget.PopUp
	img            *canvas.Image
	prevFocus      fyne.Focusable
	prevKeyHandler func(*fyne.KeyEvent)
}

func NewViewer(win fyne.Window, loader *ThumbnailLoader) *Viewer {
	return &Viewer{win: win, loader: loader}
}

// Open replaces any open popup with one for item. Must run on the UI thread.
func (v *Viewer) Open(item model.MediaItem) {
	canvasObj := v.win.Canvas()
	if v.popup != nil {
		// Replacing an open popup keeps the capture from the first Open;
		// the browse state to restore on Close has not changed.
		v.dismiss()
	} else {
		v.prevFocus = canvasObj.Focused()
		v.prevKeyHandler = canvasObj.OnTypedKey()
	}
	canvasObj.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			v.Close()
		}
	})

	title := widget.NewLabel(item.Name)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	badge := widget.NewLabel(BadgeImage)
	badge.TextStyle = fyne.TextStyle{Monospace: true}
	if item.Kind == model.KindVideo {
		badge.SetText(BadgeVideo)
	}

	closeBtn := widget.NewButtonWithIcon("Close", theme.CancelIcon(), v.Close)

	v.img = canvas.NewImageFromResource(theme.FileImageIcon())
	v.img.FillMode = canvas.ImageFillContain
	v.img.SetMinSize(fyne.NewSize(ViewerImageMinWidth, ViewerImageMinHeight))

	var body fyne.CanvasObject = v.img
	switch item.Kind {
	case model.KindVideo:
		if item.PosterURL != "" {
			v.fetchInto(item.PosterURL)
		} else {
			v.img.Resource = theme.MediaVideoIcon()
		}
		openBtn := widget.NewButtonWithIcon("Open in player", theme.MediaPlayIcon(), func() {
			v.play(item.ContentURL)
		})
		body = container.NewVBox(v.img, openBtn)
		v.play(item.ContentURL)
	default:
		v.fetchInto(item.ContentURL)
	}

	content := container.NewVBox(
		container.NewBorder(nil, nil, badge, closeBtn, title),
		body,
	)
	v.popup = widget.NewModalPopUp(content, canvasObj)
	v.popup.Show()
}

// Close hides the popup and restores focus and key handling to whatever had
// them before Open. Safe to call when nothing is open.
func (v *Viewer) Close() {
	if v.popup == nil {
		return
	}
	v.dismiss()

	v.win.Canvas().SetOnTypedKey(v.prevKeyHandler)
	v.prevKeyHandler = nil
	if v.prevFocus != nil {
		v.win.Canvas().Focus(v.prevFocus)
		v.prevFocus = nil
	}
}

func (v *Viewer) dismiss() {
	v.popup.Hide()
	v.popup = nil
	if v.img != nil {
		v.img.Image = nil
		v.img = nil
	}
}

// fetchInto loads url off the UI thread and installs it in the popup image,
// unless the popup was replaced or closed in the meantime.
func (v *Viewer) fetchInto(url string) {
	img := v.img
	go func() {
		decoded, err := v.loader.FetchImage(url)
		if err != nil {
			logging.Warn().Err(err).Str("url", url).Msg("viewer image fetch failed")
			return
		}
		fyne.Do(func() {
			if v.img != img {
				return
			}
			img.Resource = nil
			img.Image = decoded
			img.Refresh()
		})
	}()
}

func (v *Viewer) play(url string) {
	go func(u string) {
		if err := platform.OpenURL(u); err != nil {
			logging.Warn().Err(err).Str("url", u).Msg("system player launch failed")
		}
	}(url)
}
