package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/repomedia/repomedia/internal/model"
)

// mediaCard is a single gallery cell: thumbnail, filename and a kind badge.
// Tapping it (or pressing Enter while focused) opens the item in the viewer.
type mediaCard struct {
	widget.BaseWidget

	loader *ThumbnailLoader
	onOpen func(model.MediaItem)

	item     model.MediaItem
	thumbURL string

	thumb   *canvas.Image
	name    *widget.Label
	badge   *widget.Label
	bg      *canvas.Rectangle
	focused bool
}

var _ fyne.Tappable = (*mediaCard)(nil)
var _ fyne.Focusable = (*mediaCard)(nil)

func newMediaCard(loader *ThumbnailLoader, onOpen func(model.MediaItem)) *mediaCard {
	c := &mediaCard{
		loader: loader,
		onOpen: onOpen,
	}
	c.thumb = canvas.NewImageFromResource(theme.FileImageIcon())
	c.thumb.FillMode = canvas.ImageFillContain
	c.thumb.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))
	c.name = widget.NewLabel("")
	c.name.Truncation = fyne.TextTruncateEllipsis
	c.name.Alignment = fyne.TextAlignCenter
	c.badge = widget.NewLabel("")
	c.badge.Alignment = fyne.TextAlignCenter
	c.badge.TextStyle = fyne.TextStyle{Monospace: true}
	c.bg = canvas.NewRectangle(theme.Color(theme.ColorNameHover))
	c.bg.Hidden = true
	c.ExtendBaseWidget(c)
	return c
}

// SetItem repoints the card at a new media item and kicks off its thumbnail
// fetch. The card remembers which URL it asked for so a slow response for a
// recycled cell cannot overwrite a newer thumbnail.
func (c *mediaCard) SetItem(item model.MediaItem) {
	c.item = item
	c.name.SetText(item.Name)
	switch item.Kind {
	case model.KindVideo:
		c.badge.SetText(BadgeVideo)
	default:
		c.badge.SetText(BadgeImage)
	}

	url := item.ContentURL
	if item.Kind == model.KindVideo {
		url = item.PosterURL
	}
	c.thumbURL = url

	if url == "" {
		c.thumb.Resource = theme.MediaVideoIcon()
		c.thumb.Image = nil
		c.thumb.Refresh()
		return
	}

	c.thumb.Resource = theme.FileImageIcon()
	c.thumb.Image = nil
	c.thumb.Refresh()

	c.loader.Load(url, func(img image.Image) {
		fyne.Do(func() {
			if c.thumbURL != url {
				return
			}
			c.thumb.Resource = nil
			c.thumb.Image = img
			c.thumb.Refresh()
		})
	})
}

func (c *mediaCard) Tapped(*fyne.PointEvent) {
	if c.onOpen != nil {
		c.onOpen(c.item)
	}
}

func (c *mediaCard) FocusGained() {
	c.focused = true
	c.bg.Hidden = false
	c.bg.Refresh()
}

func (c *mediaCard) FocusLost() {
	c.focused = false
	c.bg.Hidden = true
	c.bg.Refresh()
}

func (c *mediaCard) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		if c.onOpen != nil {
			c.onOpen(c.item)
		}
	}
}

func (c *mediaCard) TypedRune(rune) {}

func (c *mediaCard) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		c.bg,
		container.NewVBox(c.thumb, c.name, c.badge),
	)
	return widget.NewSimpleRenderer(content)
}
