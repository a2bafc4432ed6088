package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/pathviz/engine"
)

const writeWait = 5 * time.Second

// handleStream upgrades to a websocket and forwards Runner frames as JSON
// text messages. The first message is the live board with Seq 0. Frames the
// client cannot keep up with are dropped by the Runner.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		s.log.Debug("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	frames, unsubscribe := s.runner.Subscribe()
	defer unsubscribe()

	g, _, algorithm := s.snapshot()
	hello := engine.Frame{
		RunID:     s.runner.RunID().String(),
		Algorithm: algorithm,
		Grid:      g.Snapshot(),
		Done:      !s.runner.Running(),
	}
	if err := s.send(conn, hello); err != nil {
		return
	}

	// The read loop only notices the peer closing; client messages are ignored.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case f, ok := <-frames:
			if !ok {
				return
			}
			if err := s.send(conn, f); err != nil {
				s.log.Debug("websocket write failed", slog.String("error", err.Error()))
				return
			}
		}
	}
}

func (s *Server) send(conn *websocket.Conn, f engine.Frame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(f)
}
