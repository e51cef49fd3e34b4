package messages

// JoinRequest is sent by a client after connecting to request joining the arena.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// ClientID is the ship id the client owns from now on.
type JoinAccepted struct {
	ClientID   string
	ServerName string
	TickRate   int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
