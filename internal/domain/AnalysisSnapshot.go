package domain

import "time"

// AnalysisSnapshot é o ranking por quantidade persistido de uma execução
type AnalysisSnapshot struct {
	ID             int64          `json:"id"`
	CreatedAt      time.Time      `json:"ts"`
	SourceChecksum string         `json:"source_checksum,omitempty"`
	Ranking        []RankingEntry `json:"ranking"`
}

// SnapshotPreview é um resumo de um snapshot com os primeiros itens do ranking
type SnapshotPreview struct {
	ID        int64          `json:"id"`
	CreatedAt time.Time      `json:"ts"`
	Preview   []RankingEntry `json:"top_preview"`
}

// AnalysisResult é o resultado estruturado de uma execução do pipeline
type AnalysisResult struct {
	RunID      string         `json:"run_id"`
	Source     string         `json:"source"`
	AllowZero  bool           `json:"allow_zero"`
	Report     CleaningReport `json:"report"`
	Sample     []CleanRecord  `json:"sample"`
	Metrics    *Metrics       `json:"metrics"`
	SnapshotID int64          `json:"snapshot_id"`
	ChartPath  string         `json:"chart_path,omitempty"`
}
