package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/repomedia/repomedia/internal/model"
)

func TestMediaCardSetItem(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	loader := NewThumbnailLoader(time.Second, 1)
	card := newMediaCard(loader, nil)

	tests := []struct {
		name      string
		item      model.MediaItem
		wantBadge string
	}{
		{
			name:      "image badge",
			item:      model.MediaItem{Name: "cat.png", Kind: model.KindImage},
			wantBadge: BadgeImage,
		},
		{
			name:      "video badge",
			item:      model.MediaItem{Name: "clip.mp4", Kind: model.KindVideo},
			wantBadge: BadgeVideo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card.SetItem(tt.item)
			if card.name.Text != tt.item.Name {
				t.Errorf("name = %q, want %q", card.name.Text, tt.item.Name)
			}
			if card.badge.Text != tt.wantBadge {
				t.Errorf("badge = %q, want %q", card.badge.Text, tt.wantBadge)
			}
		})
	}
}

func TestMediaCardOpensOnTap(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	loader := NewThumbnailLoader(time.Second, 1)
	var opened []string
	card := newMediaCard(loader, func(item model.MediaItem) {
		opened = append(opened, item.Name)
	})
	card.SetItem(model.MediaItem{Name: "cat.png", Kind: model.KindImage})

	card.Tapped(&fyne.PointEvent{})
	card.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	card.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})

	if len(opened) != 2 {
		t.Fatalf("opened %d times, want 2 (tap and enter)", len(opened))
	}
	if opened[0] != "cat.png" || opened[1] != "cat.png" {
		t.Errorf("opened = %v, want cat.png twice", opened)
	}
}

func TestMediaCardFocusHighlight(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	loader := NewThumbnailLoader(time.Second, 1)
	card := newMediaCard(loader, nil)

	if !card.bg.Hidden {
		t.Error("highlight visible before focus")
	}
	card.FocusGained()
	if card.bg.Hidden {
		t.Error("highlight hidden after FocusGained")
	}
	card.FocusLost()
	if !card.bg.Hidden {
		t.Error("highlight visible after FocusLost")
	}
}
