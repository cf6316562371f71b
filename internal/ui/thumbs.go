package ui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	nethttp "net/http"
	"sync"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/repomedia/repomedia/internal/logging"
)

type thumbRequest struct {
	url      string
	callback func(image.Image)
}

// ThumbnailLoader fetches media over HTTP and scales it into square
// letterboxed thumbnails. Results are memoized per URL in memory; pending
// requests are served newest first so the cells on screen win.
type ThumbnailLoader struct {
	httpClient *nethttp.Client

	cache sync.Map // url -> image.Image (scaled)

	reqLock sync.Mutex
	reqCond *sync.Cond
	queue   []thumbRequest
}

// NewThumbnailLoader starts a loader with the given number of fetch workers.
func NewThumbnailLoader(timeout time.Duration, workers int) *ThumbnailLoader {
	l := &ThumbnailLoader{
		httpClient: &nethttp.Client{Timeout: timeout},
		queue:      make([]thumbRequest, 0, ThumbnailQueueLimit),
	}
	l.reqCond = sync.NewCond(&l.reqLock)
	for i := 0; i < workers; i++ {
		go l.worker()
	}
	return l
}

// Load delivers the scaled thumbnail for url to callback, from cache when
// possible. The callback runs on a worker goroutine; wrap UI updates in
// fyne.Do. Failed fetches deliver nothing.
func (l *ThumbnailLoader) Load(url string, callback func(image.Image)) {
	if url == "" {
		return
	}
	if cached, ok := l.cache.Load(url); ok {
		callback(cached.(image.Image))
		return
	}

	l.reqLock.Lock()
	if len(l.queue) >= ThumbnailQueueLimit {
		l.queue = l.queue[1:]
	}
	l.queue = append(l.queue, thumbRequest{url: url, callback: callback})
	l.reqCond.Signal()
	l.reqLock.Unlock()
}

func (l *ThumbnailLoader) worker() {
	for {
		l.reqLock.Lock()
		for len(l.queue) == 0 {
			l.reqCond.Wait()
		}
		// Newest request first.
		last := len(l.queue) - 1
		req := l.queue[last]
		l.queue = l.queue[:last]
		l.reqLock.Unlock()

		if cached, ok := l.cache.Load(req.url); ok {
			req.callback(cached.(image.Image))
			continue
		}

		img, err := l.FetchImage(req.url)
		if err != nil {
			logging.Debug().Err(err).Str("url", req.url).Msg("thumbnail fetch failed")
			continue
		}

		scaled := scaleToThumbnail(img, int(ThumbnailSize))
		l.cache.Store(req.url, scaled)
		req.callback(scaled)
	}
}

// FetchImage downloads and decodes a full-size image. Used directly by the
// viewer; thumbnails go through Load.
func (l *ThumbnailLoader) FetchImage(url string) (image.Image, error) {
	resp, err := l.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// scaleToThumbnail letterboxes img onto a square target of the given size,
// keeping aspect ratio and centering the result.
func scaleToThumbnail(img image.Image, target int) image.Image {
	srcBounds := img.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, target, target))

	var scaledW, scaledH int
	ratio := float64(srcW) / float64(srcH)
	if ratio > 1 {
		scaledW = target
		scaledH = int(float64(target) / ratio)
	} else {
		scaledH = target
		scaledW = int(float64(target) * ratio)
	}

	xBase := (target - scaledW) / 2
	yBase := (target - scaledH) / 2
	targetRect := image.Rect(xBase, yBase, xBase+scaledW, yBase+scaledH)

	draw.ApproxBiLinear.Scale(dst, targetRect, img, srcBounds, draw.Over, nil)
	return dst
}
