// Package sound loads and plays the game's sound effects through a
// pluggable backend. Loading happens in the background and a sound that
// fails to load simply stays silent.
package sound

import (
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
)

// Clip is a prepared sound that can be played any number of times.
type Clip interface {
	Play()
}

// Backend turns an encoded resource into a playable clip.
type Backend interface {
	Prepare(name string, open func() (io.ReadCloser, error)) (Clip, error)
}

// Bank holds the loaded clips by name. It is safe for concurrent use.
type Bank struct {
	fsys    fs.FS
	backend Backend
	log     *log.Logger

	mu    sync.Mutex
	clips map[string]Clip
	muted bool
	wg    sync.WaitGroup
}

// NewBank creates a bank reading resources from fsys.
func NewBank(fsys fs.FS, backend Backend, logger *log.Logger) *Bank {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bank{
		fsys:    fsys,
		backend: backend,
		log:     logger,
		clips:   make(map[string]Clip),
	}
}

// Load prepares resource under name in the background.
func (b *Bank) Load(name, resource string) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		clip, err := b.backend.Prepare(name, func() (io.ReadCloser, error) {
			return b.open(resource)
		})
		if err != nil {
			b.log.Warn("sound unavailable", "name", name, "resource", resource, "err", err)
			return
		}

		b.mu.Lock()
		b.clips[name] = clip
		b.mu.Unlock()
		b.log.Debug("sound loaded", "name", name)
	}()
}

func (b *Bank) open(resource string) (io.ReadCloser, error) {
	if b.fsys == nil {
		return nil, fmt.Errorf("sound: open %s: no resource filesystem", resource)
	}
	f, err := b.fsys.Open(resource)
	if err != nil {
		return nil, fmt.Errorf("sound: open %s: %w", resource, err)
	}
	return f, nil
}

// Play plays a loaded clip. Unknown names and a muted bank are silent.
func (b *Bank) Play(name string) {
	b.mu.Lock()
	clip, ok := b.clips[name]
	muted := b.muted
	b.mu.Unlock()

	if !ok || muted {
		return
	}
	clip.Play()
}

// Loaded reports whether name is ready to play.
func (b *Bank) Loaded(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.clips[name]
	return ok
}

// SetMuted silences or unsilences the bank.
func (b *Bank) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// Muted reports whether the bank is silenced.
func (b *Bank) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

// ToggleMute flips the mute flag and returns the new value.
func (b *Bank) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

// Wait blocks until every pending Load has finished.
func (b *Bank) Wait() {
	b.wg.Wait()
}
