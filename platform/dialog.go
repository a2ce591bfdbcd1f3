package platform

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

type FileFilter struct {
	Name string
	// Extensions without the leading dot.
	Extensions []string
}

// Matches reports whether path has one of the filter's extensions.
// A filter without extensions matches everything.
func (f FileFilter) Matches(path string) bool {
	if len(f.Extensions) == 0 {
		return true
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return slices.ContainsFunc(f.Extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

type FileDialogOptions struct {
	Title       string
	Directory   string
	DefaultName string
	Filters     []FileFilter

	Multiple          bool
	SelectDirectories bool
}

// FileInfo is the result of a dialog.
type FileInfo struct {
	Paths []string
	// Format is the filter the first path matched, nil without filters.
	Format *FileFilter
}

func (f *FileInfo) Path() string {
	if f == nil || len(f.Paths) == 0 {
		return ""
	}
	return f.Paths[0]
}

// FileDialog shows native file pickers. done receives nil when the user
// cancels. Implementations may call done from another goroutine.
type FileDialog interface {
	Open(opts FileDialogOptions, done func(*FileInfo))
	Save(opts FileDialogOptions, done func(*FileInfo))
}

// ScriptedDialog answers dialogs with queued responses, for headless runs
// and tests. A dialog with no queued response is cancelled.
type ScriptedDialog struct {
	mu        sync.Mutex
	responses [][]string
	requests  []FileDialogOptions
}

var _ FileDialog = (*ScriptedDialog)(nil)

func NewScriptedDialog() *ScriptedDialog {
	return &ScriptedDialog{}
}

// Respond queues the paths picked by the next dialog. No paths means cancel.
func (d *ScriptedDialog) Respond(paths ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.responses = append(d.responses, paths)
}

// Requests returns the options of every dialog shown so far.
func (d *ScriptedDialog) Requests() []FileDialogOptions {
	d.mu.Lock()
	defer d.mu.Unlock()

	return slices.Clone(d.requests)
}

func (d *ScriptedDialog) Open(opts FileDialogOptions, done func(*FileInfo)) {
	done(d.answer(opts))
}

func (d *ScriptedDialog) Save(opts FileDialogOptions, done func(*FileInfo)) {
	opts.Multiple = false
	done(d.answer(opts))
}

func (d *ScriptedDialog) answer(opts FileDialogOptions) *FileInfo {
	d.mu.Lock()
	d.requests = append(d.requests, opts)

	var paths []string
	if len(d.responses) > 0 {
		paths = d.responses[0]
		d.responses = d.responses[1:]
	}
	d.mu.Unlock()

	if len(paths) == 0 {
		return nil
	}

	if !opts.Multiple {
		paths = paths[:1]
	}

	info := &FileInfo{Paths: paths}
	for i := range opts.Filters {
		if opts.Filters[i].Matches(paths[0]) {
			info.Format = &opts.Filters[i]
			break
		}
	}

	if len(opts.Filters) > 0 && info.Format == nil {
		// a native dialog never returns a file outside its filters
		return nil
	}

	return info
}
