package handler

import "net/http"

// HandleHealthz reports liveness for load balancer checks, naming the
// service so a misrouted check is easy to spot.
func HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "disaster-preparedness-api",
	})
}
