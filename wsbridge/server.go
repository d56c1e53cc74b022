package wsbridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nanoapp/hostkit/hostcall"
)

// Server exposes a hostcall.Host on an HTTP endpoint. Each connection
// gets its own read/write goroutine pair; result frames from async
// callbacks funnel through the session's send channel.
type Server struct {
	host     hostcall.Host
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(host hostcall.Host, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		host:   host,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("bridge upgrade failed", "err", err)
		return
	}

	sess := &session{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		logger: s.logger,
	}
	go sess.writePump()
	sess.readPump(s.host)
}

type session struct {
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	logger *slog.Logger
}

func (c *session) readPump(host hostcall.Host) {
	defer func() {
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			c.logger.Warn("bridge dropped malformed call", "err", err)
			continue
		}
		if f.Op == "" {
			continue
		}

		if f.Sync {
			v := host.InvokeSync(f.Op, f.Params)
			c.reply(frame{ID: f.ID, OK: true, Value: v})
			continue
		}

		id := f.ID
		host.Invoke(f.Op, f.Params, hostcall.Callbacks{
			Success: func(payload map[string]any) {
				c.reply(frame{ID: id, OK: true, Payload: payload})
			},
			Fail: func(reason map[string]any) {
				c.reply(frame{ID: id, Payload: reason})
			},
		})
	}
}

// reply may run on a host callback goroutine after the connection died;
// it drops the frame instead of blocking forever.
func (c *session) reply(f frame) {
	raw, err := json.Marshal(f)
	if err != nil {
		c.logger.Error("bridge encode result", "id", f.ID, "err", err)
		return
	}
	select {
	case c.send <- raw:
	case <-c.done:
		c.logger.Debug("bridge dropped result for closed connection", "id", f.ID)
	}
}

func (c *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
