package stats

import (
	"sync"
	"time"

	"github.com/fosdem/glsteps/lib/rendering"
)

type Snapshot struct {
	Step      string  `json:"step"`
	Frames    uint64  `json:"frames"`
	DrawCalls uint64  `json:"draw_calls"`
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	WsClients int     `json:"ws_clients"`
}

// Stats is written by the render loop and read by the api.
type Stats struct {
	mu   sync.Mutex
	data Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time
}

func New() *Stats {
	s := &Stats{now: time.Now}
	s.start = s.now()
	s.frameTimer = s.start
	return s
}

// Update is called once per frame.
func (s *Stats) Update(r *rendering.Renderer, step string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.frameCounter++
	if now.Sub(s.frameTimer) >= time.Second {
		s.data.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.data.Step = step
	s.data.Frames = r.Frames
	s.data.DrawCalls = r.DrawCalls
	s.data.Uptime = now.Sub(s.start).Seconds()
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}
