package bfs

import "errors"

// ErrSourceOutOfRange is returned by Run when s is outside [0, g.NNodes()).
var ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")
