//go:build headless

package frontend

import (
	"context"
	"errors"
)

type window struct{}

func newWindow(int) *window {
	return &window{}
}

// Run implements Frontend.
func (w *window) Run(context.Context, Session) error {
	return errors.New("window frontend is not available in headless builds")
}
