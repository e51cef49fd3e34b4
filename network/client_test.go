package network

import (
	"errors"
	"testing"

	"github.com/automoto/skirmish/session"
	"github.com/automoto/skirmish/shared/messages"
	"github.com/automoto/skirmish/shared/netcomponents"
)

func TestClientLatestSnapshotWins(t *testing.T) {
	c := NewClient(session.NewState())

	if snap := c.LatestSnapshot(); snap != nil {
		t.Fatalf("LatestSnapshot() = %+v, want nil", snap)
	}

	c.pushSnapshot(messages.ShipSnapshot{Tick: 1})
	c.pushSnapshot(messages.ShipSnapshot{Tick: 2, Ships: []netcomponents.ShipStateData{{ID: "p1"}}})

	snap := c.LatestSnapshot()
	if snap == nil {
		t.Fatal("LatestSnapshot() = nil")
	}
	if snap.Tick != 2 || len(snap.Ships) != 1 {
		t.Errorf("LatestSnapshot() = %+v, want tick 2 with one ship", snap)
	}
	if again := c.LatestSnapshot(); again != nil {
		t.Errorf("snapshot delivered twice: %+v", again)
	}
}

func TestClientJoinAcceptedSetsLocalID(t *testing.T) {
	s := session.NewState()
	c := NewClient(s)

	c.handleJoinAccepted(messages.JoinAccepted{ClientID: "p7", ServerName: "alpha", TickRate: 20})

	if got := s.LocalClientID(); got != "p7" {
		t.Errorf("LocalClientID() = %q, want p7", got)
	}
	if c.State() != StateJoinedGame {
		t.Errorf("State() = %v, want %v", c.State(), StateJoinedGame)
	}
	if c.ServerName() != "alpha" || c.TickRate() != 20 {
		t.Errorf("server = %q tick = %d", c.ServerName(), c.TickRate())
	}
}

func TestClientKillEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []any
		want   string
	}{
		{
			name:   "local ship killed",
			events: []any{messages.KillEvent{VictimID: "me", KillerID: "p2"}},
			want:   "p2",
		},
		{
			name:   "other ship killed",
			events: []any{messages.KillEvent{VictimID: "p3", KillerID: "p2"}},
			want:   "",
		},
		{
			name: "latest killer replaces earlier one",
			events: []any{
				messages.KillEvent{VictimID: "me", KillerID: "p2"},
				messages.KillEvent{VictimID: "me", KillerID: "p4"},
			},
			want: "p4",
		},
		{
			name: "environmental death clears killer",
			events: []any{
				messages.KillEvent{VictimID: "me", KillerID: "p2"},
				messages.KillEvent{VictimID: "me"},
			},
			want: "",
		},
		{
			name: "respawn clears killer",
			events: []any{
				messages.KillEvent{VictimID: "me", KillerID: "p2"},
				messages.RespawnEvent{ShipID: "me"},
			},
			want: "",
		},
		{
			name: "other respawn keeps killer",
			events: []any{
				messages.KillEvent{VictimID: "me", KillerID: "p2"},
				messages.RespawnEvent{ShipID: "p2"},
			},
			want: "p2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.NewState()
			s.SetLocalClientID("me")
			c := NewClient(s)

			for _, evt := range tt.events {
				switch e := evt.(type) {
				case messages.KillEvent:
					c.handleKill(e)
				case messages.RespawnEvent:
					c.handleRespawn(e)
				}
			}

			if got := s.KilledBy(); got != tt.want {
				t.Errorf("KilledBy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientSendWithoutConnection(t *testing.T) {
	c := NewClient(session.NewState())
	if err := c.SendMessage(messages.JoinRequest{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendMessage() error = %v, want ErrNotConnected", err)
	}
}
