// Package audio provides the audio collaborator boundary: the scheduler only
// needs pause/reset semantics on the single current playback handle; clip
// generation and playback live outside this repository.
package audio

import "sync"

//go:generate mockgen -source=player.go -destination=../mocks/audio/mock_player.go -package=mock_audio Playback

// Playback is a single playing audio clip. The session controller always
// pauses and resets the current handle before replacing or dropping it.
type Playback interface {
	Pause()
	Reset()
}

// Manager owns the current playback handle.
type Manager struct {
	mu      sync.Mutex
	current Playback
}

// NewManager creates a Manager with no current playback.
func NewManager() *Manager {
	return &Manager{}
}

// Stop pauses and resets the current handle, if any, and clears it.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}
	m.current.Pause()
	m.current.Reset()
	m.current = nil
}

// Swap stops the current handle and installs the replacement.
func (m *Manager) Swap(next Playback) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Pause()
		m.current.Reset()
	}
	m.current = next
}

// Current returns the current handle, or nil.
func (m *Manager) Current() Playback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
