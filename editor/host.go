package editor

import (
	"context"
	"io"
	"sync"
)

// CommandExecutor runs a named command in the host editor and returns its
// asynchronous acknowledgment.
type CommandExecutor interface {
	ExecuteCommand(ctx context.Context, command string, args ...any) (any, error)
}

// setContextCommand is the host command that flips a named UI context flag.
const setContextCommand = "setContext"

// SetContextValue sets a named context flag in the host environment for
// conditional UI behavior. Thin pass-through: the host's acknowledgment is
// returned verbatim.
func SetContextValue(ctx context.Context, exec CommandExecutor, key string, value any) error {
	_, err := exec.ExecuteCommand(ctx, setContextCommand, key, value)
	return err
}

// OutputChannel is a named, user-visible, append-only text channel. It
// satisfies logger.Sink. Safe for concurrent use; each write appends one
// chunk atomically.
type OutputChannel struct {
	name   string
	mu     sync.Mutex
	w      io.Writer
	onShow func()
	shown  bool
}

// NewOutputChannel creates a channel with the given name appending to w.
func NewOutputChannel(name string, w io.Writer) *OutputChannel {
	return &OutputChannel{name: name, w: w}
}

// Name returns the channel's user-visible name.
func (c *OutputChannel) Name() string {
	return c.name
}

func (c *OutputChannel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

// OnShow installs the host hook that brings the channel into view.
func (c *OutputChannel) OnShow(hook func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onShow = hook
}

// Show brings the channel into the user's view. Without a host attached it
// only records that a reveal was requested.
func (c *OutputChannel) Show() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shown = true
	if c.onShow != nil {
		c.onShow()
	}
}

// Shown reports whether a reveal has been requested.
func (c *OutputChannel) Shown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown
}
