package session

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard receives the formatted profit as plain text.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the OS clipboard (xclip/xsel/wl-copy on Linux,
// pbcopy on macOS, the Win32 API on Windows).
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last copied text in memory.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *MemoryClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last copied text.
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
