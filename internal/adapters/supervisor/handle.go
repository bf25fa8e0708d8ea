package supervisor

import (
	"bytes"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.trai.ch/gdmcp/internal/core/domain"
)

// pipeGrace bounds how long Wait keeps reading pipes held open by grandchildren after exit.
const pipeGrace = 2 * time.Second

type stream int

const (
	streamOutput stream = iota
	streamErrors
)

// event is a message from a process to its pump. The exit message is last.
type event struct {
	stream stream
	line   string
	exited bool
	err    error
}

// handle is one tracked process and its line buffers.
type handle struct {
	cmd      *exec.Cmd
	events   chan event
	done     chan struct{}
	maxLines int

	mu     sync.Mutex
	output []string
	errors []string
}

func newHandle(exe string, args []string, maxLines int) *handle {
	return &handle{
		cmd:      exec.Command(exe, args...), //nolint:gosec,noctx // lifetime is bounded by Stop and Shutdown
		events:   make(chan event, 256),
		done:     make(chan struct{}),
		maxLines: maxLines,
	}
}

func (h *handle) start() error {
	stdout := &lineWriter{stream: streamOutput, events: h.events}
	stderr := &lineWriter{stream: streamErrors, events: h.events}
	h.cmd.Stdout = stdout
	h.cmd.Stderr = stderr
	h.cmd.WaitDelay = pipeGrace

	if err := h.cmd.Start(); err != nil {
		return err
	}

	go func() {
		err := h.cmd.Wait()
		stdout.flush()
		stderr.flush()
		h.events <- event{exited: true, err: err}
	}()
	return nil
}

// pump appends lines until the exit message, then reports the exit once.
func (h *handle) pump(onExit func(*handle, error)) {
	defer close(h.done)

	for ev := range h.events {
		if ev.exited {
			onExit(h, ev.err)
			return
		}
		h.append(ev.stream, ev.line)
	}
}

func (h *handle) append(s stream, line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	buf := &h.output
	if s == streamErrors {
		buf = &h.errors
	}
	*buf = append(*buf, line)
	if h.maxLines > 0 && len(*buf) > h.maxLines {
		*buf = append((*buf)[:0:0], (*buf)[len(*buf)-h.maxLines:]...)
	}
}

func (h *handle) snapshot() domain.ProcessOutput {
	h.mu.Lock()
	defer h.mu.Unlock()

	return domain.ProcessOutput{
		Output: append([]string{}, h.output...),
		Errors: append([]string{}, h.errors...),
	}
}

func (h *handle) kill() {
	if h.cmd.Process != nil {
		_ = h.cmd.Process.Kill()
	}
}

// lineWriter splits a stream into lines and sends each as an event.
// A trailing partial line is held until the next newline or flush.
type lineWriter struct {
	stream stream
	events chan<- event
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.send(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	if len(w.buf) > 0 {
		w.send(w.buf)
		w.buf = nil
	}
}

func (w *lineWriter) send(line []byte) {
	w.events <- event{stream: w.stream, line: strings.TrimSuffix(string(line), "\r")}
}
