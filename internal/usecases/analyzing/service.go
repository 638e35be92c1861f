package analyzing

import (
	"context"

	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics/internal/usecases/cleaning"
	"github.com/vfg2006/sales-analytics/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics/pkg/log"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const defaultSampleSize = 5

// Options parametriza uma execução do pipeline
type Options struct {
	Source     string
	AllowZero  bool
	ChartPath  string // vazio = não gera gráfico
	SampleSize int
}

type Service struct {
	reader  TableReader
	ranking ranking.RankingService
	chart   ChartRenderer
}

// NewService monta o pipeline. rankingService e chart são opcionais.
func NewService(reader TableReader, rankingService ranking.RankingService, chart ChartRenderer) *Service {
	return &Service{
		reader:  reader,
		ranking: rankingService,
		chart:   chart,
	}
}

// Run lê, limpa e agrega a tabela de vendas, salva o ranking por quantidade e
// gera o gráfico mensal. Falhas de leitura, limpeza ou agregação resultam em um
// resultado sem métricas; falhas ao salvar ou desenhar não interrompem a execução.
func (s *Service) Run(ctx context.Context, opts Options) (*domain.AnalysisResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx).WithField("source", opts.Source)

	result := &domain.AnalysisResult{
		RunID:      runID,
		Source:     opts.Source,
		AllowZero:  opts.AllowZero,
		Sample:     []domain.CleanRecord{},
		SnapshotID: ranking.FailedSnapshotID,
	}

	table, err := s.reader.Read(ctx, opts.Source)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler a tabela de vendas")
		return result, nil
	}

	clean, report, err := cleaning.Clean(table, opts.AllowZero)
	result.Report = report
	if err != nil {
		logger.WithError(err).Error("Erro durante a limpeza dos dados")
		return result, nil
	}

	sampleSize := opts.SampleSize
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}
	if sampleSize > len(clean.Rows) {
		sampleSize = len(clean.Rows)
	}
	result.Sample = clean.Rows[:sampleSize]

	if len(clean.Rows) == 0 {
		logger.Warn("Nenhuma linha válida após a limpeza")
		return result, nil
	}

	metrics, err := aggregating.Aggregate(clean)
	if err != nil {
		logger.WithError(err).Error("Erro durante o cálculo da análise")
		return result, nil
	}
	result.Metrics = metrics

	if s.ranking != nil {
		id, err := s.ranking.SaveAnalysis(ctx, metrics.RankingByQuantity, table.Checksum)
		if err != nil {
			logger.WithError(err).Warn("Análise não foi salva")
		}
		result.SnapshotID = id
	}

	if s.chart != nil && opts.ChartPath != "" {
		path, err := s.chart.RenderMonthlyRevenue(metrics.MonthlyRevenue, opts.ChartPath)
		if err != nil {
			logger.WithError(err).Warn("Gráfico não gerado")
		} else {
			result.ChartPath = path
		}
	}

	logger.WithFields(log.Fields{
		"snapshot_id": result.SnapshotID,
		"rows":        report.FinalCount,
	}).Info("Análise concluída")

	return result, nil
}
