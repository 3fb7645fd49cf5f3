package console

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Session is a single console connection. Network I/O runs in dedicated
// goroutines; Authed is touched only from the simulation loop.
type Session struct {
	ID   uint64
	conn net.Conn

	InQueue  chan string // simulation loop reads lines from here
	OutQueue chan string // writer goroutine reads from here

	IP     string
	Authed bool // simulation loop only

	writeTimeout time.Duration
	readTimeout  time.Duration

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	log *zap.Logger
}

func NewSession(conn net.Conn, id uint64, inSize, outSize int, readTimeout, writeTimeout time.Duration, log *zap.Logger) *Session {
	return &Session{
		ID:           id,
		conn:         conn,
		InQueue:      make(chan string, inSize),
		OutQueue:     make(chan string, outSize),
		IP:           conn.RemoteAddr().String(),
		writeTimeout: writeTimeout,
		readTimeout:  readTimeout,
		closeCh:      make(chan struct{}),
		log:          log.With(zap.Uint64("session", id)),
	}
}

// Start launches the reader and writer goroutines.
func (s *Session) Start() {
	go s.readLoop()
	go s.writeLoop()
}

// Send queues a reply line. Non-blocking: if OutQueue is full the session
// is disconnected (backpressure on a slow console client).
func (s *Session) Send(line string) {
	if s.closed.Load() {
		return
	}
	select {
	case s.OutQueue <- line:
	default:
		s.log.Warn("console output queue full, dropping session")
		s.Close()
	}
}

func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.closeCh)
		s.conn.Close()
	})
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// readLoop reads lines from the TCP connection and pushes them onto InQueue
// for the simulation loop to consume.
func (s *Session) readLoop() {
	defer s.Close()

	sc := bufio.NewScanner(s.conn)
	sc.Buffer(make([]byte, 0, 4096), 64*1024)
	for {
		select {
		case <-s.closeCh:
			return
		default:
		}

		if s.readTimeout > 0 {
			s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil && !s.closed.Load() {
				s.log.Debug("console read error", zap.Error(err))
			}
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// Block until the loop drains InQueue or the session closes. The
		// readLoop goroutine is per-session, so blocking only stalls this
		// client.
		select {
		case s.InQueue <- line:
		case <-s.closeCh:
			return
		}
	}
}

// writeLoop writes queued reply lines to the TCP connection.
func (s *Session) writeLoop() {
	defer s.Close()

	for {
		select {
		case line := <-s.OutQueue:
			if !s.writeLine(line) {
				return
			}
		case <-s.closeCh:
			return
		}
	}
}

func (s *Session) writeLine(line string) bool {
	if s.writeTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if _, err := s.conn.Write([]byte(line + "\n")); err != nil {
		if !s.closed.Load() {
			s.log.Debug("console write error", zap.Error(err))
		}
		return false
	}
	return true
}
