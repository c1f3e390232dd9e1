package server

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status string    `json:"status"`
	App    string    `json:"app"`
	Env    string    `json:"env"`
	Time   time.Time `json:"time"`
}

// HealthHandler is the liveness probe. It sits under /api so the route guard ignores it.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status: "ok",
			App:    s.config.GetAppName(),
			Env:    s.env,
			Time:   time.Now().UTC(),
		})
	}
}
