package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"sniffscope/internal/pkg/capture"
)

// TestProgramSmoke drives the full bubbletea program: home page renders,
// navigation works, and quitting from home exits cleanly.
func TestProgramSmoke(t *testing.T) {
	opener := func(string) (capture.Source, error) {
		return &stubSource{}, nil
	}
	controller := capture.NewControllerWith(opener, stubLister)
	model := NewModel(controller, stubLister, "eth0")

	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Network Packet Sniffer"))
	}, teatest.WithCheckInterval(10*time.Millisecond), teatest.WithDuration(3*time.Second))

	// Into the sniffer page and back.
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("No packets captured yet"))
	}, teatest.WithCheckInterval(10*time.Millisecond), teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}
