package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-report-api/pkg/log"
)

type HealthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(HealthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC(),
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: write response")
		}
	})
}
