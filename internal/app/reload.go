package app

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/texscene/internal/scene"
)

// descWatcher reports edits to a scene description file. The file's
// directory is watched so editors that save by rename are still seen.
type descWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
	log     *zap.Logger
}

func watchDescription(path string, log *zap.Logger) (*descWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watching scene description: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching scene description: %w", err)
	}

	dw := &descWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go dw.run()
	return dw, nil
}

func (dw *descWatcher) run() {
	defer close(dw.done)
	for {
		select {
		case ev, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != dw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Coalesce bursts; one pending reload is enough.
			select {
			case dw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.log.Warn("scene watcher error", zap.Error(err))
		}
	}
}

// Changed reports, without blocking, whether the file was edited since the
// last call.
func (dw *descWatcher) Changed() bool {
	select {
	case <-dw.changed:
		return true
	default:
		return false
	}
}

func (dw *descWatcher) Close() error {
	err := dw.watcher.Close()
	<-dw.done
	return err
}

// reload re-reads the description and swaps the rebuilt objects into the
// driver. A broken file is logged and the current scene kept.
func (a *App) reload() {
	desc, err := loadDescription(a.cfg.Scene.Description)
	if err != nil {
		a.log.Warn("scene reload failed, keeping current scene", zap.Error(err))
		return
	}
	sel, _ := a.cfg.TextureSelection()
	reg, err := scene.NewRegistry(desc, sel)
	if err != nil {
		a.log.Warn("scene reload failed, keeping current scene", zap.Error(err))
		return
	}
	if !slices.Equal(desc.Textures, a.desc.Textures) {
		a.log.Warn("texture list changed; restart to load new textures")
	}
	a.desc = desc
	a.driver.Replace(reg, desc.Light)
	a.log.Info("scene description reloaded", zap.String("file", a.cfg.Scene.Description))
}
