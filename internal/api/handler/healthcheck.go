package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/pkg/apiErrors"
)

// Pinger verifica se o banco de snapshots responde
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Healthcheck: banco de snapshots indisponível")
				apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "Banco de snapshots indisponível", nil)
				return
			}
		}

		writeJSON(w, http.StatusOK, healthcheckResponse{Status: "ok", Time: time.Now().UTC()})
	})
}
