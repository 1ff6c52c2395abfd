//go:build !linux

package imgload

import (
	"errors"
	"image"
)

type Watcher struct{}

func Watch(path string, flip bool, onLoad func(*image.NRGBA)) (*Watcher, error) {
	return nil, errors.New("watching textures is only supported on linux")
}

func (w *Watcher) Close() error {
	return nil
}
