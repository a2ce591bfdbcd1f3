// Package platform holds the narrow contracts the core expects from the
// host platform, with in-memory implementations for headless use.
package platform

import (
	"errors"
	"sync"
)

var ErrClipboardUnavailable = errors.New("platform: clipboard unavailable")

type Clipboard interface {
	Contents() (string, error)
	SetContents(text string) error
}

// MemoryClipboard is a process-local clipboard, safe for concurrent use.
type MemoryClipboard struct {
	mu          sync.Mutex
	text        string
	unavailable bool
}

var _ Clipboard = (*MemoryClipboard)(nil)

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Contents() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return "", ErrClipboardUnavailable
	}
	return c.text, nil
}

func (c *MemoryClipboard) SetContents(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unavailable {
		return ErrClipboardUnavailable
	}
	c.text = text
	return nil
}

// SetUnavailable makes every call fail with ErrClipboardUnavailable.
func (c *MemoryClipboard) SetUnavailable(unavailable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unavailable = unavailable
}
