// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file. Files that do not fit into the program area
// of the machine memory are rejected before any of it is executed.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte past the limit to detect oversized files without
	// reading all of them
	data, err := io.ReadAll(io.LimitReader(file, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("loading file %s: %w: maximum is %d bytes",
			path, chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("loading file %s: file is empty", path)
	}
	return data, nil
}
