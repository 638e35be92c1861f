// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-analytics/infrastructure/database"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const (
	analysisSnapshotTable = "analysis_snapshot"

	// createdAtLayout é o formato textual de created_at, sempre em UTC
	createdAtLayout = "2006-01-02 15:04:05"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AnalysisSnapshotRepository interface {
	Save(ctx context.Context, ranking []domain.RankingEntry, checksum string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisSnapshot, error)
	GetLatest(ctx context.Context) (*domain.AnalysisSnapshot, error)
	GetByID(ctx context.Context, id int64) (*domain.AnalysisSnapshot, error)
}

type analysisSnapshotRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewAnalysisSnapshotRepository(conn database.Conn) AnalysisSnapshotRepository {
	return &analysisSnapshotRepository{
		conn: conn,
		now:  time.Now,
	}
}

// Save grava o ranking completo, na ordem recebida, e devolve o id gerado
func (r *analysisSnapshotRepository) Save(ctx context.Context, ranking []domain.RankingEntry, checksum string) (int64, error) {
	if ranking == nil {
		ranking = []domain.RankingEntry{}
	}

	payload, err := json.Marshal(ranking)
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar ranking: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(analysisSnapshotTable).
		Columns("created_at", "q_json", "source_checksum").
		Values(r.now().UTC().Format(createdAtLayout), string(payload), checksum).
		Suffix("RETURNING id").
		PlaceholderFormat(r.conn.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return id, nil
}

// ListRecent retorna os snapshots mais recentes primeiro
func (r *analysisSnapshotRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisSnapshot, error) {
	if limit <= 0 {
		return []*domain.AnalysisSnapshot{}, nil
	}

	query, args, err := r.selectSnapshots().
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalysisSnapshot, 0, limit)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// GetLatest retorna o snapshot mais recente ou nil quando não há nenhum
func (r *analysisSnapshotRepository) GetLatest(ctx context.Context) (*domain.AnalysisSnapshot, error) {
	query, args, err := r.selectSnapshots().
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

// GetByID retorna o snapshot com o id informado ou nil quando não existe
func (r *analysisSnapshotRepository) GetByID(ctx context.Context, id int64) (*domain.AnalysisSnapshot, error) {
	query, args, err := r.selectSnapshots().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *analysisSnapshotRepository) selectSnapshots() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "created_at", "q_json", "source_checksum").
		From(analysisSnapshotTable).
		PlaceholderFormat(r.conn.PlaceholderFormat())
}

func (r *analysisSnapshotRepository) getOne(ctx context.Context, query string, args []interface{}) (*domain.AnalysisSnapshot, error) {
	row := r.conn.QueryRowContext(ctx, query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}
	return snapshot, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *analysisSnapshotRepository) scanSnapshot(s scanner) (*domain.AnalysisSnapshot, error) {
	var (
		snapshot  domain.AnalysisSnapshot
		createdAt string
		payload   string
	)

	if err := s.Scan(&snapshot.ID, &createdAt, &payload, &snapshot.SourceChecksum); err != nil {
		return nil, err
	}

	ts, err := time.ParseInLocation(createdAtLayout, createdAt, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("created_at inválido %q: %w", createdAt, err)
	}
	snapshot.CreatedAt = ts

	snapshot.Ranking = []domain.RankingEntry{}
	if err := json.Unmarshal([]byte(payload), &snapshot.Ranking); err != nil {
		return nil, fmt.Errorf("q_json inválido no snapshot %d: %w", snapshot.ID, err)
	}
	if snapshot.Ranking == nil {
		snapshot.Ranking = []domain.RankingEntry{}
	}

	return &snapshot, nil
}
