package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-analytics/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking/mocks"
)

var limitsMock = Limits{ListRecent: 5, TopN: 3}

func TestAnalysesRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         string
		setup          func(service *mocks.MockRankingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Lista com valores padrão",
			target: "/v1/analyses",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ListRecent(gomock.Any(), 5, 3).Return([]*domain.SnapshotPreview{
					{ID: 2, CreatedAt: createdAt, Preview: []domain.RankingEntry{{Producto: "TE", Valor: 5}}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"analyses":[{"id":2,"ts":"2024-05-01T10:00:00Z","top_preview":[{"producto":"TE","valor":5}]}]}`,
		},
		{
			name:   "Lista com parâmetros",
			target: "/v1/analyses?limit=1&preview=0",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ListRecent(gomock.Any(), 1, 0).Return([]*domain.SnapshotPreview{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"analyses":[]}`,
		},
		{
			name:           "Limite inválido",
			target:         "/v1/analyses?limit=abc",
			setup:          func(service *mocks.MockRankingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_003","message":"Parâmetro limit inválido","details":{"limit":"abc"}}`,
		},
		{
			name:   "Top do último snapshot",
			target: "/v1/analyses/latest/top",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ReadLatestTopN(gomock.Any(), 3).Return([]domain.RankingEntry{{Producto: "TE", Valor: 5}, {Producto: "CAFE", Valor: 2.5}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"latest","top":[{"producto":"TE","valor":5},{"producto":"CAFE","valor":2.5}]}`,
		},
		{
			name:   "Top por id desconhecido devolve lista vazia",
			target: "/v1/analyses/42/top?n=10",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ReadTopNByID(gomock.Any(), int64(42), 10).Return([]domain.RankingEntry{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":"42","top":[]}`,
		},
		{
			name:           "Id inválido",
			target:         "/v1/analyses/abc/top",
			setup:          func(service *mocks.MockRankingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_003","message":"Id de análise inválido","details":{"id":"abc"}}`,
		},
		{
			name:           "N negativo",
			target:         "/v1/analyses/latest/top?n=-1",
			setup:          func(service *mocks.MockRankingService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_003","message":"Parâmetro n inválido","details":{"n":"-1"}}`,
		},
		{
			name:   "Erro de banco",
			target: "/v1/analyses/7/top",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ReadTopNByID(gomock.Any(), int64(7), 3).Return(nil, ranking.NewRankingErrorWithID(ranking.ErrReadSnapshot, 7, "q_json inválido"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"code":"SRV_002","message":"Erro ao buscar o Top-N da análise"}`,
		},
		{
			name:   "Banco indisponível",
			target: "/v1/analyses",
			setup: func(service *mocks.MockRankingService) {
				service.EXPECT().ListRecent(gomock.Any(), 5, 3).Return(nil, ranking.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"code":"SRV_004","message":"Erro ao listar análises"}`,
		},
		{
			name:           "Rota inexistente",
			target:         "/v1/analyses/1",
			setup:          func(service *mocks.MockRankingService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"code":"RES_001","message":"Rota não encontrada"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockRankingService(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Analyses(service, limitsMock)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

type pingerMock struct {
	err error
}

func (p pingerMock) Ping(context.Context) error {
	return p.err
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
	}{
		{name: "Sem banco", db: nil, expectedStatus: http.StatusOK},
		{name: "Banco ok", db: pingerMock{}, expectedStatus: http.StatusOK},
		{name: "Banco fora", db: pingerMock{err: errors.New("connection refused")}, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(Healthcheck(tt.db)...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"status":"ok"`)
			}
		})
	}
}
