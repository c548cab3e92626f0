// Package ssh adapts a gliderlabs/ssh session into a terminal tcell can
// drive, so a remote client plays over a plain ssh connection.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty presents an SSH session's pty as a tcell.Tty. Reads come from the
// client's keyboard, writes go to the client's terminal, and window-change
// requests surface through NotifyResize.
type Tty struct {
	sess  gossh.Session
	winCh <-chan gossh.Window

	mu   sync.Mutex
	size tcell.WindowSize
	cb   func()

	stop chan struct{}
	done chan struct{}
}

// NewTty wraps sess as a tcell terminal. pty carries the size negotiated at
// session open; winCh delivers later resizes.
func NewTty(sess gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		sess:  sess,
		winCh: winCh,
		size:  tcell.WindowSize{Width: pty.Window.Width, Height: pty.Window.Height},
	}
}

func (t *Tty) Read(p []byte) (int, error)  { return t.sess.Read(p) }
func (t *Tty) Write(p []byte) (int, error) { return t.sess.Write(p) }

// Close tears down the session channel.
func (t *Tty) Close() error { return t.sess.Close() }

// Start launches the window-change watcher.
func (t *Tty) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return nil
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.watch(t.stop, t.done)
	return nil
}

// Stop halts the window-change watcher and waits for it to exit.
func (t *Tty) Stop() error {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()
	if stop == nil {
		return nil
	}
	close(stop)
	<-done
	return nil
}

// Drain is a no-op; session writes are not buffered on our side.
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize registers cb to run after each window-change request.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
}

func (t *Tty) watch(stop, done chan struct{}) {
	defer close(done)
	for {
		select {
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
			cb := t.cb
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		case <-stop:
			return
		}
	}
}
