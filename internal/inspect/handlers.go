package inspect

import (
	"net/http"
	"runtime"
	"time"

	"github.com/comalice/tickerx"
)

type healthResponse struct {
	Status    string `json:"status"`
	Running   bool   `json:"running"`
	Frame     uint64 `json:"frame"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !s.loop.Running() {
		status = "stopped"
	}
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    status,
		Running:   s.loop.Running(),
		Frame:     s.loop.FrameNumber(),
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

// GET /stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var st tickerx.Stats
	if !s.call(w, r, func(sched *tickerx.Scheduler) { st = sched.Stats() }) {
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), st)
}

// POST /pause
func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.setPaused(w, r, true)
}

// POST /resume
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.setPaused(w, r, false)
}

func (s *Server) setPaused(w http.ResponseWriter, r *http.Request, paused bool) {
	var st tickerx.Stats
	ok := s.call(w, r, func(sched *tickerx.Scheduler) {
		sched.SetPaused(paused)
		st = sched.Stats()
	})
	if !ok {
		return
	}
	s.logger.Info("pause state changed", "paused", paused, "frame", st.Frame)
	respondOK(w, RequestIDFromContext(r.Context()), st)
}
