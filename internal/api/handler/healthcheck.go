package handler

import (
	"net/http"
	"time"
)

type healthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// HealthcheckHandler só indica que o processo responde; não consulta banco nem a fonte de cotação
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthcheckResponse{Status: "ok", Time: time.Now().UTC()})
	})
}
