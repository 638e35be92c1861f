package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Analyses(service ranking.RankingService, limits Limits) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyses",
			Method:  http.MethodGet,
			Handler: ListAnalyses(service, limits),
		},
		{
			Path:    "/v1/analyses/:id/top",
			Method:  http.MethodGet,
			Handler: GetAnalysisTop(service, limits),
		},
	}
}
