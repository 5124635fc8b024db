package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"SpringRibbon/internal/sim"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMsg struct {
	Type string `json:"type"`
	// set_target
	Index int     `json:"index,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	// configure — pointer fields so absent keys keep the live value
	Stiffness     *float64 `json:"stiffness,omitempty"`
	Damping       *float64 `json:"damping,omitempty"`
	Physics       *bool    `json:"physics,omitempty"`
	TangentLength *float64 `json:"tangent_length,omitempty"`
	TangentCount  *int     `json:"tangent_count,omitempty"`
	CurveSamples  *int     `json:"curve_samples,omitempty"`
	// reset
	Segments *int     `json:"segments,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
}

func parseFloatOverride(values url.Values, key string) (*float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return nil, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &val, true
}

func parseQueryOverrides(values url.Values) (ParamOverrides, bool) {
	var overrides ParamOverrides
	var found bool

	if v, ok := parseFloatOverride(values, "stiffness"); ok {
		overrides.Stiffness = v
		found = true
	}
	if v, ok := parseFloatOverride(values, "damping"); ok {
		overrides.Damping = v
		found = true
	}
	if raw := values.Get("segments"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			overrides.Segments = &n
			found = true
		}
	}
	return overrides, found
}

func serveWS(h *sim.Hub, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	roomID := query.Get("room")
	if roomID == "" {
		roomID = "default"
	}
	overrides, hasOverrides := parseQueryOverrides(query)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	sendHz := sim.UpdateRateHz
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Duration(1000.0/sendHz) * time.Millisecond),
	}

	room := h.GetRoom(roomID)
	room.AddClient()
	clientID := sim.RandID("c")
	log.Printf("room %s: client %s connected", room.ID, clientID)
	if hasOverrides {
		room.Mu.Lock()
		params := overrides.apply(room.Params)
		room.Params = params
		rebuild := len(room.Chain.Curves) != params.SegmentCount
		width, height := room.Chain.Width, room.Chain.Height
		room.Mu.Unlock()
		if rebuild {
			if err := room.Reset(params.SegmentCount, width, height); err != nil {
				log.Printf("room %s: segment override rejected: %v", room.ID, err)
			}
		}
		log.Printf("room %s query overrides: stiffness %.3f damping %.3f segments %d",
			room.ID, params.Stiffness, params.Damping, params.SegmentCount)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reader: input-layer writes. Targets and parameters are plain
	// value replacements applied between ticks.
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var m wsMsg
			if err := json.Unmarshal(data, &m); err != nil {
				continue
			}
			switch m.Type {
			case "join":
				// Nothing to attach; the room and chain already exist.
			case "set_target":
				room.Mu.Lock()
				ch := room.Chain
				ch.SetTarget(m.Index, sim.Clamp(m.X, 0, ch.Width), sim.Clamp(m.Y, 0, ch.Height))
				room.Mu.Unlock()
			case "release":
				room.Mu.Lock()
				room.Chain.Relax()
				room.Mu.Unlock()
			case "configure":
				room.Mu.Lock()
				p := room.Params
				if m.Stiffness != nil {
					p.Stiffness = *m.Stiffness
				}
				if m.Damping != nil {
					p.Damping = *m.Damping
				}
				if m.Physics != nil {
					p.PhysicsEnabled = *m.Physics
				}
				if m.TangentLength != nil {
					p.TangentLength = *m.TangentLength
				}
				if m.TangentCount != nil {
					p.TangentCount = *m.TangentCount
				}
				if m.CurveSamples != nil {
					p.CurveSamples = *m.CurveSamples
				}
				room.Params = sim.SanitizeParams(p)
				room.Mu.Unlock()
			case "reset":
				room.Mu.Lock()
				segments := room.Params.SegmentCount
				width, height := room.Chain.Width, room.Chain.Height
				room.Mu.Unlock()
				if m.Segments != nil {
					segments = *m.Segments
				}
				if m.Width != nil {
					width = *m.Width
				}
				if m.Height != nil {
					height = *m.Height
				}
				if err := room.Reset(segments, width, height); err != nil {
					log.Printf("room %s reset rejected: %v", room.ID, err)
				}
			}
		}
	}()

	// Writer: per-client state pushes for the renderer. Read-only with
	// respect to the chain.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.sendTick.C:
				room.Mu.Lock()
				now := room.Now
				params := room.Params
				ch := room.Chain
				samples := ch.SamplePoints(params.CurveSamples)
				tangents := ch.SampleTangents(params.TangentCount)
				pool := ch.Points()

				points := make([]pointDTO, len(samples))
				for i, p := range samples {
					points[i] = pointDTO{X: p.X, Y: p.Y}
				}
				tanDTOs := make([]tangentDTO, len(tangents))
				for i, ts := range tangents {
					tanDTOs[i] = tangentDTO{X: ts.Point.X, Y: ts.Point.Y, DX: ts.Dir.X, DY: ts.Dir.Y}
				}
				controls := make([]controlDTO, len(pool))
				for i, cp := range pool {
					controls[i] = controlDTO{
						Index: i,
						X:     cp.Pos.X, Y: cp.Pos.Y,
						TX: cp.Target.X, TY: cp.Target.Y,
						Fixed: cp.Fixed,
					}
				}
				meta := metaFor(ch)
				room.Mu.Unlock()

				msg := stateMsg{
					Type:     "state",
					Now:      now,
					Points:   points,
					Tangents: tanDTOs,
					Controls: controls,
					Params:   paramsToDTO(params),
					Meta:     meta,
				}
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			}
		}
	}()

	// Cleanup
	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()
	room.RemoveClient()
	log.Printf("room %s: client %s disconnected", room.ID, clientID)
}
