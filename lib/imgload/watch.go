//go:build linux

package imgload

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/fosdem/glsteps/lib/log"
	"github.com/jhenstridge/go-inotify"
)

// Watcher reloads an image whenever the file is rewritten.
type Watcher struct {
	path    string
	flip    bool
	watcher *inotify.Watcher
	logger  *slog.Logger
}

// Watch starts reloading path in the background. onLoad runs on the
// watcher goroutine, so it must not touch the GL context.
func Watch(path string, flip bool, onLoad func(*image.NRGBA)) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	_, err = watcher.Watch(path)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("could not watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    path,
		flip:    flip,
		watcher: watcher,
		logger:  log.Module("imgload"),
	}
	go w.run(onLoad)
	return w, nil
}

func (w *Watcher) run(onLoad func(*image.NRGBA)) {
	for ev := range w.watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		w.logger.Debug(fmt.Sprintf("Reloading %s due to inotify event", w.path))
		// editors tend to write in several steps
		time.Sleep(100 * time.Millisecond)

		img, err := Load(w.path, w.flip)
		if err != nil {
			w.logger.Error(fmt.Sprintf("Error loading image: %s", err))
			continue
		}
		onLoad(img)
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
