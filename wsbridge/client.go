package wsbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/nanoapp/hostkit/hostcall"
)

// Client is a hostcall.Host backed by a remote bridge endpoint. Every
// Invoke becomes one call frame; the matching result frame settles the
// installed callbacks. Failure payloads from the remote host arrive
// verbatim; bridge-level faults (closed connection, encode errors) fail
// the call with a "bridge" reason since the fail channel is the only
// failure path the contract has.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger

	send   chan []byte
	nextID atomic.Uint64

	pending  *xsync.Map[uint64, hostcall.Callbacks]
	syncWait *xsync.Map[uint64, chan frame]

	closed    chan struct{}
	closeOnce sync.Once
}

var _ hostcall.Host = (*Client)(nil)

// Dial connects to a bridge endpoint (ws:// or wss:// URL, including any
// pairing token the server requires).
func Dial(ctx context.Context, url string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial bridge: %w", err)
	}

	c := &Client{
		conn:     conn,
		logger:   logger,
		send:     make(chan []byte, sendBuffer),
		pending:  xsync.NewMap[uint64, hostcall.Callbacks](),
		syncWait: xsync.NewMap[uint64, chan frame](),
		closed:   make(chan struct{}),
	}

	readDone := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		err := c.readPump()
		close(readDone)
		c.conn.Close()
		return err
	})
	g.Go(func() error {
		err := c.writePump(readDone)
		c.conn.Close()
		return err
	})
	go func() {
		if err := g.Wait(); err != nil {
			c.logger.Debug("bridge connection ended", "err", err)
		}
		c.shutdown()
	}()

	return c, nil
}

// Close tears the connection down. In-flight calls fail with a bridge
// reason.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Invoke(op string, params map[string]any, cb hostcall.Callbacks) {
	id := c.nextID.Add(1)
	c.pending.Store(id, cb)

	raw, err := json.Marshal(frame{ID: id, Op: op, Params: params})
	if err != nil {
		c.pending.Delete(id)
		failBridge(cb, fmt.Sprintf("encode call: %v", err))
		return
	}

	// The closed check runs after the pending store so a concurrent
	// shutdown either fails the call here or via its pending sweep,
	// never neither.
	select {
	case <-c.closed:
		if _, ok := c.pending.LoadAndDelete(id); ok {
			failBridge(cb, "bridge closed")
		}
		return
	default:
	}

	select {
	case c.send <- raw:
	case <-c.closed:
		if _, ok := c.pending.LoadAndDelete(id); ok {
			failBridge(cb, "bridge closed")
		}
	}
}

// InvokeSync is a blocking round trip: the remote host runs the op
// inline and the direct value comes back in the result frame.
func (c *Client) InvokeSync(op string, params map[string]any) any {
	id := c.nextID.Add(1)
	wait := make(chan frame, 1)
	c.syncWait.Store(id, wait)

	raw, err := json.Marshal(frame{ID: id, Op: op, Sync: true, Params: params})
	if err != nil {
		c.syncWait.Delete(id)
		return nil
	}

	select {
	case c.send <- raw:
	case <-c.closed:
		c.syncWait.Delete(id)
		return nil
	}

	select {
	case f := <-wait:
		return f.Value
	case <-c.closed:
		c.syncWait.Delete(id)
		return nil
	}
}

func (c *Client) readPump() error {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			c.logger.Warn("bridge dropped malformed frame", "err", err)
			continue
		}
		c.route(f)
	}
}

func (c *Client) route(f frame) {
	if cb, ok := c.pending.LoadAndDelete(f.ID); ok {
		if f.OK {
			if cb.Success != nil {
				cb.Success(f.Payload)
			}
			return
		}
		if cb.Fail != nil {
			cb.Fail(f.Payload)
		}
		return
	}
	if wait, ok := c.syncWait.LoadAndDelete(f.ID); ok {
		wait <- f
		return
	}
	c.logger.Debug("bridge result for unknown call", "id", f.ID)
}

func (c *Client) writePump(readDone <-chan struct{}) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case <-readDone:
			return nil
		}
	}
}

// shutdown fails every in-flight call exactly once.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.pending.Range(func(id uint64, cb hostcall.Callbacks) bool {
			c.pending.Delete(id)
			failBridge(cb, "bridge closed")
			return true
		})
	})
}

func failBridge(cb hostcall.Callbacks, msg string) {
	if cb.Fail != nil {
		cb.Fail(map[string]any{"error": "bridge", "errorMessage": msg})
	}
}
