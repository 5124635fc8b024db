package sim

import (
	"math/rand"
	"sync"
	"time"
)

// Room owns one chain and its live parameters. One goroutine (the room
// loop) writes the simulation; websocket handlers read state and mutate
// targets/params under Mu.
type Room struct {
	ID     string
	Now    float64
	Chain  *Chain
	Params Params
	Mu     sync.Mutex

	clients int
	stop    chan struct{}
}

type Hub struct {
	Rooms map[string]*Room
	Mu    sync.Mutex
	base  Params
}

func NewHub(base Params) *Hub {
	return &Hub{
		Rooms: map[string]*Room{},
		base:  SanitizeParams(base),
	}
}

// GetRoom returns the room with the given ID, creating it (and starting
// its simulation loop) on first use.
func (h *Hub) GetRoom(id string) *Room {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	r, ok := h.Rooms[id]
	if !ok {
		r = newRoom(id, h.base)
		h.Rooms[id] = r
		go r.run()
	}
	return r
}

// CleanupEmptyRooms stops and removes rooms with no attached clients.
func (h *Hub) CleanupEmptyRooms() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, r := range h.Rooms {
		r.Mu.Lock()
		empty := r.clients == 0
		r.Mu.Unlock()
		if empty {
			close(r.stop)
			delete(h.Rooms, id)
		}
	}
}

func newRoom(id string, base Params) *Room {
	base = SanitizeParams(base)
	chain, err := NewChain(base.SegmentCount, DefaultWorldW, DefaultWorldH)
	if err != nil {
		// sanitized params cannot produce an invalid layout
		panic(err)
	}
	return &Room{
		ID:     id,
		Chain:  chain,
		Params: base,
		stop:   make(chan struct{}),
	}
}

// Tick advances the simulation one frame: pending target and parameter
// writes were applied between ticks, so a single chain update is the
// whole frame.
func (r *Room) Tick() {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.Now += Dt
	r.Chain.Update(r.Params)
}

func (r *Room) run() {
	hz := SimHz
	ticker := time.NewTicker(time.Duration(float64(time.Second) / hz))
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// SetParams swaps the live configuration. Effective on the next tick.
func (r *Room) SetParams(p Params) {
	r.Mu.Lock()
	r.Params = SanitizeParams(p)
	r.Mu.Unlock()
}

// Reset discards the chain and rebuilds it from scratch: velocities and
// in-flight targets are lost, which is the documented semantics for
// resizes and explicit resets.
func (r *Room) Reset(segments int, width, height float64) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	chain, err := NewChain(segments, width, height)
	if err != nil {
		return err
	}
	r.Chain = chain
	r.Params.SegmentCount = segments
	return nil
}

func (r *Room) AddClient() {
	r.Mu.Lock()
	r.clients++
	r.Mu.Unlock()
}

func (r *Room) RemoveClient() {
	r.Mu.Lock()
	r.clients--
	r.Mu.Unlock()
}

func RandID(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return prefix + "-" + string(b)
}
