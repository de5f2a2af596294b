package embedhost

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
)

// Conn is a newline-delimited JSON message channel to the hosting
// application. Sends are fire-and-forget: a write error means the host
// went away, which the explorer treats the same as a host that never
// answers.
type Conn struct {
	mu sync.Mutex
	rw io.ReadWriteCloser
	w  *bufio.Writer
}

// NewConn wraps an established duplex stream.
func NewConn(rw io.ReadWriteCloser) *Conn {
	return &Conn{rw: rw, w: bufio.NewWriter(rw)}
}

// Dial connects to a host listening at addr. Addresses containing a
// path separator are treated as unix sockets, anything else as TCP.
func Dial(addr string) (*Conn, error) {
	network := "tcp"
	if strings.ContainsRune(addr, '/') {
		network = "unix"
	}

	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial host %s: %w", addr, err)
	}
	return NewConn(conn), nil
}

// Send writes one message. Errors are returned for callers that want
// them but every call site is free to ignore them; the protocol has no
// delivery guarantee either way.
func (c *Conn) Send(msgType string, payload any) error {
	env, err := NewEnvelope(msgType, payload)
	if err != nil {
		return err
	}
	return c.SendEnvelope(env)
}

// SendEnvelope writes a pre-built envelope.
func (c *Conn) SendEnvelope(env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.w.Write(append(data, '\n')); err != nil {
		return err
	}
	return c.w.Flush()
}

// Listen reads envelopes until the stream closes or ctx is done,
// passing each valid inbound message to handler. Malformed lines and
// unknown types are skipped silently.
func (c *Conn) Listen(ctx context.Context, handler func(Envelope)) {
	scanner := bufio.NewScanner(c.rw)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var env Envelope
		if err := json.Unmarshal(scanner.Bytes(), &env); err != nil {
			continue
		}
		if err := env.ValidateInbound(); err != nil {
			continue
		}

		handler(env)
	}
}

// Close closes the underlying stream.
func (c *Conn) Close() error {
	return c.rw.Close()
}
