//go:build !ebiten

package app

import "fmt"

// RunWindow reports that the window backend was not compiled in.
func RunWindow(*Config, int64) error {
	return fmt.Errorf("%w: rebuild with -tags ebiten", ErrWindowUnavailable)
}
