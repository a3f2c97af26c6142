//go:build headless

package frontend

import "errors"

type beeper struct{}

func newBeeper() (*beeper, error) {
	return nil, errors.New("audio output is not available in headless builds")
}

func (b *beeper) SetActive(bool) {}

func (b *beeper) Close() {}
