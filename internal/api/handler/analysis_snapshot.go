package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LatestSnapshot é o valor de :id que seleciona o snapshot mais recente
const LatestSnapshot = "latest"

// Limits são os valores padrão das consultas de snapshots
type Limits struct {
	ListRecent int
	TopN       int
}

type listAnalysesResponse struct {
	Analyses []*domain.SnapshotPreview `json:"analyses"`
}

type topResponse struct {
	ID  string                `json:"id"`
	Top []domain.RankingEntry `json:"top"`
}

// ListAnalyses lista os últimos snapshots com o preview do ranking
func ListAnalyses(service ranking.RankingService, limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", limits.ListRecent)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", map[string]string{"limit": r.URL.Query().Get("limit")})
			return
		}

		preview, err := queryInt(r, "preview", limits.TopN)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro preview inválido", map[string]string{"preview": r.URL.Query().Get("preview")})
			return
		}

		previews, err := service.ListRecent(r.Context(), limit, preview)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar análises")
			return
		}

		writeJSON(w, http.StatusOK, listAnalysesResponse{Analyses: previews})
	}
}

// GetAnalysisTop retorna o Top-N de um snapshot; :id aceita "latest"
func GetAnalysisTop(service ranking.RankingService, limits Limits) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := queryInt(r, "n", limits.TopN)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro n inválido", map[string]string{"n": r.URL.Query().Get("n")})
			return
		}

		idParam := router.Param(r, "id")

		var top []domain.RankingEntry
		if idParam == LatestSnapshot {
			top, err = service.ReadLatestTopN(r.Context(), n)
		} else {
			id, parseErr := strconv.ParseInt(idParam, 10, 64)
			if parseErr != nil || id <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Id de análise inválido", map[string]string{"id": idParam})
				return
			}
			top, err = service.ReadTopNByID(r.Context(), id, n)
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar o Top-N da análise")
			return
		}

		writeJSON(w, http.StatusOK, topResponse{ID: idParam, Top: top})
	}
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, ranking.ErrInvalidLimit
	}
	return value, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)

	switch {
	case errors.Is(err, ranking.ErrInvalidLimit):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, ranking.ErrStoreUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, message, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
