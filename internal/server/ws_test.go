package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SpringRibbon/internal/sim"

	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, room string) *websocket.Conn {
	t.Helper()
	hub := sim.NewHub(sim.DefaultParams())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?room=" + room
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func nextState(t *testing.T, conn *websocket.Conn) stateMsg {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var msg stateMsg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read state: %v", err)
		}
		if msg.Type == "state" {
			return msg
		}
	}
}

func TestWSStatePushShape(t *testing.T) {
	conn := dialTestServer(t, "shape")
	if err := conn.WriteJSON(map[string]any{"type": "join"}); err != nil {
		t.Fatalf("join: %v", err)
	}

	msg := nextState(t, conn)
	segs := msg.Params.Segments
	if segs != sim.DefaultSegments {
		t.Fatalf("segments = %d, want %d", segs, sim.DefaultSegments)
	}
	if want := segs * (msg.Params.CurveSamples + 1); len(msg.Points) != want {
		t.Fatalf("point samples = %d, want %d", len(msg.Points), want)
	}
	if want := segs * msg.Params.TangentCount; len(msg.Tangents) != want {
		t.Fatalf("tangent samples = %d, want %d", len(msg.Tangents), want)
	}
	if want := 3*segs + 1; len(msg.Controls) != want {
		t.Fatalf("control points = %d, want %d", len(msg.Controls), want)
	}
	if msg.Meta.W != sim.DefaultWorldW || msg.Meta.H != sim.DefaultWorldH {
		t.Fatalf("meta size = %gx%g", msg.Meta.W, msg.Meta.H)
	}
}

func TestWSConfigureAndTargets(t *testing.T) {
	conn := dialTestServer(t, "interact")

	if err := conn.WriteJSON(map[string]any{"type": "configure", "stiffness": 0.22}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"type": "set_target", "index": 1, "x": 300.0, "y": 500.0}); err != nil {
		t.Fatalf("set_target: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	var sawStiffness, sawTarget bool
	for time.Now().Before(deadline) && !(sawStiffness && sawTarget) {
		msg := nextState(t, conn)
		if msg.Params.Stiffness == 0.22 {
			sawStiffness = true
		}
		if len(msg.Controls) > 1 && msg.Controls[1].TX == 300 && msg.Controls[1].TY == 500 {
			sawTarget = true
		}
	}
	if !sawStiffness {
		t.Error("configure message never took effect")
	}
	if !sawTarget {
		t.Error("set_target message never took effect")
	}
}

func TestWSReset(t *testing.T) {
	conn := dialTestServer(t, "reset")
	if err := conn.WriteJSON(map[string]any{"type": "reset", "segments": 2}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		msg := nextState(t, conn)
		if msg.Params.Segments == 2 {
			if want := 3*2 + 1; len(msg.Controls) != want {
				t.Fatalf("controls after reset = %d, want %d", len(msg.Controls), want)
			}
			return
		}
	}
	t.Fatal("reset never took effect")
}
