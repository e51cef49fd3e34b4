package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/skirmish/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "Offline"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateJoinedGame:
		return "Online"
	case StateError:
		return "Error"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

var ErrNotConnected = errors.New("not connected")

// SessionWriter receives the identity updates the server sends. session.State
// implements it.
type SessionWriter interface {
	LocalClientID() string
	SetLocalClientID(id string)
	SetRoster(names map[string]string)
	SetKilledBy(id string)
	ClearKilledBy()
}

// Client manages a WebSocket connection to the arena server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	serverName string
	tickRate   int
	conn       *websocket.Conn

	session SessionWriter

	snapshotCh chan messages.ShipSnapshot // size-1 buffered; latest wins
}

func NewClient(session SessionWriter) *Client {
	return &Client{
		state:      StateDisconnected,
		session:    session,
		snapshotCh: make(chan messages.ShipSnapshot, 1),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.handleJoinAccepted(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, msg messages.Roster) {
		c.session.SetRoster(msg.Names)
	})

	router.On(func(_ *router.NetworkClient, evt messages.KillEvent) {
		c.handleKill(evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.RespawnEvent) {
		c.handleRespawn(evt)
	})

	router.On(func(_ *router.NetworkClient, snapshot messages.ShipSnapshot) {
		c.pushSnapshot(snapshot)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) handleJoinAccepted(msg messages.JoinAccepted) {
	log.Printf("[client] join accepted: clientID=%s server=%s tickRate=%d",
		msg.ClientID, msg.ServerName, msg.TickRate)
	c.session.SetLocalClientID(msg.ClientID)
	c.mu.Lock()
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.state = StateJoinedGame
	c.mu.Unlock()
}

// handleKill records who destroyed the local ship. Kills of other ships are
// not tracked.
func (c *Client) handleKill(evt messages.KillEvent) {
	if evt.VictimID == "" || evt.VictimID != c.session.LocalClientID() {
		return
	}
	log.Printf("[client] destroyed by %q", evt.KillerID)
	if evt.KillerID == "" {
		c.session.ClearKilledBy()
		return
	}
	c.session.SetKilledBy(evt.KillerID)
}

func (c *Client) handleRespawn(evt messages.RespawnEvent) {
	if evt.ShipID != "" && evt.ShipID == c.session.LocalClientID() {
		c.session.ClearKilledBy()
	}
}

func (c *Client) pushSnapshot(snapshot messages.ShipSnapshot) {
	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	c.snapshotCh <- snapshot
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestSnapshot returns the most recent ShipSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *messages.ShipSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// Status is the connection state as shown on the HUD.
func (c *Client) Status() string {
	return c.State().String()
}
