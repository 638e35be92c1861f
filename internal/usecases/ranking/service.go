package ranking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics/infrastructure/repository"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// RankingService guarda e consulta os snapshots do ranking por quantidade
type RankingService interface {
	SaveAnalysis(ctx context.Context, ranking []domain.RankingEntry, checksum string) (int64, error)
	ListRecent(ctx context.Context, limit, previewSize int) ([]*domain.SnapshotPreview, error)
	ReadLatestTopN(ctx context.Context, n int) ([]domain.RankingEntry, error)
	ReadTopNByID(ctx context.Context, id int64, n int) ([]domain.RankingEntry, error)
}

type SnapshotRankingService struct {
	SnapshotRepository repository.AnalysisSnapshotRepository
}

func NewRankingService(snapshotRepository repository.AnalysisSnapshotRepository) RankingService {
	return &SnapshotRankingService{
		SnapshotRepository: snapshotRepository,
	}
}

// SaveAnalysis grava o ranking completo. Em caso de falha devolve FailedSnapshotID.
func (s *SnapshotRankingService) SaveAnalysis(ctx context.Context, ranking []domain.RankingEntry, checksum string) (int64, error) {
	if s.SnapshotRepository == nil {
		return FailedSnapshotID, ErrStoreUnavailable
	}

	id, err := s.SnapshotRepository.Save(ctx, ranking, checksum)
	if err != nil {
		logrus.WithError(err).Error("Erro ao salvar snapshot da análise")
		return FailedSnapshotID, NewRankingError(ErrSaveSnapshot, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": id,
		"entries":     len(ranking),
	}).Info("Snapshot da análise salvo")

	return id, nil
}

// ListRecent lista os snapshots mais recentes primeiro, com os previewSize primeiros itens de cada ranking
func (s *SnapshotRankingService) ListRecent(ctx context.Context, limit, previewSize int) ([]*domain.SnapshotPreview, error) {
	if limit < 0 || previewSize < 0 {
		return nil, ErrInvalidLimit
	}
	if s.SnapshotRepository == nil {
		return nil, ErrStoreUnavailable
	}

	snapshots, err := s.SnapshotRepository.ListRecent(ctx, limit)
	if err != nil {
		return nil, NewRankingError(ErrReadSnapshot, err.Error())
	}

	previews := make([]*domain.SnapshotPreview, 0, len(snapshots))
	for _, snapshot := range snapshots {
		previews = append(previews, &domain.SnapshotPreview{
			ID:        snapshot.ID,
			CreatedAt: snapshot.CreatedAt,
			Preview:   topN(snapshot.Ranking, previewSize),
		})
	}

	return previews, nil
}

// ReadLatestTopN devolve os n primeiros itens do snapshot mais recente, ou vazio se não houver snapshot
func (s *SnapshotRankingService) ReadLatestTopN(ctx context.Context, n int) ([]domain.RankingEntry, error) {
	if n < 0 {
		return nil, ErrInvalidLimit
	}
	if s.SnapshotRepository == nil {
		return nil, ErrStoreUnavailable
	}

	snapshot, err := s.SnapshotRepository.GetLatest(ctx)
	if err != nil {
		return nil, NewRankingError(ErrReadSnapshot, err.Error())
	}
	if snapshot == nil {
		return []domain.RankingEntry{}, nil
	}

	return topN(snapshot.Ranking, n), nil
}

// ReadTopNByID devolve os n primeiros itens do snapshot informado, ou vazio se o id não existir
func (s *SnapshotRankingService) ReadTopNByID(ctx context.Context, id int64, n int) ([]domain.RankingEntry, error) {
	if n < 0 {
		return nil, ErrInvalidLimit
	}
	if s.SnapshotRepository == nil {
		return nil, ErrStoreUnavailable
	}

	snapshot, err := s.SnapshotRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewRankingErrorWithID(ErrReadSnapshot, id, err.Error())
	}
	if snapshot == nil {
		return []domain.RankingEntry{}, nil
	}

	return topN(snapshot.Ranking, n), nil
}

func topN(ranking []domain.RankingEntry, n int) []domain.RankingEntry {
	if n > len(ranking) {
		n = len(ranking)
	}
	out := make([]domain.RankingEntry, n)
	copy(out, ranking[:n])
	return out
}
