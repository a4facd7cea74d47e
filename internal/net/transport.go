// Package net carries a drawing session between boards on a LAN: a
// WebSocket hub on the host that relays shape operations between clients,
// plus mDNS discovery so clients can find a host without typing an address.
package net

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/josefdc/pixel-alchemy-studio/internal/state"
)

// DefaultPort is the port the host serves the session on.
const DefaultPort = 8877

// Message types exchanged over a session socket.
const (
	MsgShape    = "shape"    // one committed shape
	MsgClear    = "clear"    // clear all shapes of OwnerID ("all" wipes the board)
	MsgSnapshot = "snapshot" // full board state, sent to a client on connect
)

// Message is one JSON frame of the session protocol.
type Message struct {
	Type    string        `json:"type"`
	Shape   *state.Shape  `json:"shape,omitempty"`
	OwnerID string        `json:"owner_id,omitempty"`
	Shapes  []state.Shape `json:"shapes,omitempty"`
}

// peer wraps a connection with a write lock; gorilla/websocket allows only
// one concurrent writer per connection.
type peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *peer) send(msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(msg)
}

// HostCallbacks connects the hub to the hosting application.
type HostCallbacks struct {
	// Snapshot returns the current board contents for a freshly connected
	// client.
	Snapshot func() []state.Shape
	// OnShape is called for every shape received from a client, before it
	// is relayed to the other clients.
	OnShape func(state.Shape)
	// OnClear is called for every clear received from a client.
	OnClear func(ownerID string)
}

// Hub is run by the host. It accepts WebSocket clients on /ws, replays the
// board snapshot to each newcomer and relays every operation to all other
// clients.
type Hub struct {
	mu    sync.RWMutex
	peers map[*peer]bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{peers: make(map[*peer]bool)}
}

func (h *Hub) add(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p] = true
	log.Printf("[net] client connected: %s", p.conn.RemoteAddr())
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, p)
	log.Printf("[net] client disconnected: %s", p.conn.RemoteAddr())
}

// broadcast sends msg to every connected client except exclude (the
// originator of a relayed operation; nil sends to everyone).
func (h *Hub) broadcast(msg Message, exclude *peer) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for p := range h.peers {
		if p == exclude {
			continue
		}
		if err := p.send(msg); err != nil {
			log.Printf("[net] send to %s failed: %v", p.conn.RemoteAddr(), err)
		}
	}
}

// BroadcastAll sends a locally originated operation to every client.
func (h *Hub) BroadcastAll(msg Message) {
	h.broadcast(msg, nil)
}

// Handler returns the /ws upgrade handler for the host's HTTP server.
func (h *Hub) Handler(cb HostCallbacks) http.Handler {
	upgrader := websocket.Upgrader{
		// Session sharing is same-LAN only; there is no browser origin to
		// validate.
		CheckOrigin: func(*http.Request) bool { return true },
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[net] upgrade failed: %v", err)
			return
		}
		p := &peer{conn: conn}
		h.add(p)
		defer h.remove(p)
		defer conn.Close()

		if cb.Snapshot != nil {
			if err := p.send(Message{Type: MsgSnapshot, Shapes: cb.Snapshot()}); err != nil {
				log.Printf("[net] snapshot to %s failed: %v", conn.RemoteAddr(), err)
				return
			}
		}

		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			switch msg.Type {
			case MsgShape:
				if msg.Shape == nil {
					continue
				}
				if cb.OnShape != nil {
					cb.OnShape(*msg.Shape)
				}
				h.broadcast(msg, p)
			case MsgClear:
				if cb.OnClear != nil {
					cb.OnClear(msg.OwnerID)
				}
				h.broadcast(msg, p)
			}
		}
	})
}

// Serve runs the host's session server until it fails. It blocks.
func (h *Hub) Serve(port int, cb HostCallbacks) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h.Handler(cb))
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[net] session server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

// ClientCallbacks connects a dialed session to the joining application.
type ClientCallbacks struct {
	OnSnapshot func(shapes []state.Shape)
	OnShape    func(s state.Shape)
	OnClear    func(ownerID string)
}

// Client is one side of a joined session.
type Client struct {
	peer peer
}

// Dial connects to a host's session server at host:port.
func Dial(addr string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial session host %s: %w", addr, err)
	}
	c := &Client{}
	c.peer.conn = conn
	return c, nil
}

// Send transmits one operation to the host.
func (c *Client) Send(msg Message) error {
	return c.peer.send(msg)
}

// SendShape transmits a locally committed shape.
func (c *Client) SendShape(s state.Shape) error {
	return c.Send(Message{Type: MsgShape, Shape: &s})
}

// SendClear transmits a clear for ownerID.
func (c *Client) SendClear(ownerID string) error {
	return c.Send(Message{Type: MsgClear, OwnerID: ownerID})
}

// Listen consumes frames from the host until the connection drops, invoking
// the matching callback for each. It blocks and returns the read error that
// ended the session.
func (c *Client) Listen(cb ClientCallbacks) error {
	for {
		var msg Message
		if err := c.peer.conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("session read: %w", err)
		}
		switch msg.Type {
		case MsgSnapshot:
			if cb.OnSnapshot != nil {
				cb.OnSnapshot(msg.Shapes)
			}
		case MsgShape:
			if msg.Shape != nil && cb.OnShape != nil {
				cb.OnShape(*msg.Shape)
			}
		case MsgClear:
			if cb.OnClear != nil {
				cb.OnClear(msg.OwnerID)
			}
		}
	}
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.peer.conn.Close()
}
