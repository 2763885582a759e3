package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/transition"
)

// RunInfo describes the latest run token.
type RunInfo struct {
	Gen       uint64 `json:"gen"`
	ID        string `json:"id"`
	Direction string `json:"direction"`
	Animation string `json:"animation"`
}

// ValueResponse is the body of GET /api/v1/value.
type ValueResponse struct {
	Value float64  `json:"value"`
	Idle  bool     `json:"idle"`
	Start float64  `json:"start"`
	End   float64  `json:"end"`
	Run   *RunInfo `json:"run,omitempty"`
}

// PlayResponse is the body of an accepted forward or backward request.
type PlayResponse struct {
	Direction string `json:"direction"`
	Animation string `json:"animation"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	resp := ValueResponse{
		Value: s.transition.Read(),
		Idle:  s.transition.Idle(),
		Start: s.transition.Start(),
		End:   s.transition.End(),
	}
	if run, ok := s.transition.Latest(); ok {
		resp.Run = &RunInfo{
			Gen:       run.Gen,
			ID:        run.ID.String(),
			Direction: run.Direction.String(),
			Animation: run.Animation.String(),
		}
	}
	respondOK(w, http.StatusOK, resp)
}

func (s *Server) handlePlay(d transition.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd stream.Command
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
			respondError(w, http.StatusBadRequest, fmt.Errorf("decode command: %w", err))
			return
		}
		a, err := cmd.ResolveAnimation(s.fallback)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.transition.Play(a, d); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, transition.ErrSchedulerUnavailable) {
				status = http.StatusServiceUnavailable
			}
			respondError(w, status, err)
			return
		}
		s.logger.Info("playing", "direction", d, "animation", a)
		respondOK(w, http.StatusAccepted, PlayResponse{Direction: d.String(), Animation: a.String()})
	}
}
