// Session loop — reads line-delimited JSON requests from a reader and
// writes one response line per request. The agent answers requests; it
// never initiates traffic.
package gateway

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxLineBytes caps a single request line.
const maxLineBytes = 256 * 1024

// defaultRequestTimeout bounds one dispatch when the caller configured none.
const defaultRequestTimeout = 5 * time.Second

// Session serves a dispatcher over a line-delimited request stream.
type Session struct {
	id         string
	dispatcher *Dispatcher
	logger     *zap.Logger
	timeout    time.Duration
}

// NewSession creates a Session with a fresh uuid id.
// A non-positive timeout selects the default request timeout.
func NewSession(d *Dispatcher, logger *zap.Logger, timeout time.Duration) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Session{
		id:         uuid.NewString(),
		dispatcher: d,
		logger:     logger,
		timeout:    timeout,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Run serves requests until the reader is exhausted or the context is
// cancelled. Each request is dispatched under its own timeout; blank
// lines are skipped.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.logger.Info("Session started", zap.String("session_id", s.id))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
		resp := s.dispatcher.Handle(reqCtx, line)
		cancel()

		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	s.logger.Info("Session ended", zap.String("session_id", s.id))
	return nil
}
