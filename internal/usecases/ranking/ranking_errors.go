package ranking

import (
	"errors"
	"fmt"
)

// FailedSnapshotID é o id devolvido quando o snapshot não pôde ser gravado
const FailedSnapshotID int64 = 0

// Erros específicos para o contexto de snapshots
var (
	ErrStoreUnavailable = errors.New("snapshot store unavailable")
	ErrSaveSnapshot     = errors.New("error saving analysis snapshot")
	ErrReadSnapshot     = errors.New("error reading analysis snapshot")
	ErrInvalidLimit     = errors.New("limit must not be negative")
)

// RankingError é um erro com contexto adicional para snapshots
type RankingError struct {
	Err        error // Erro base
	SnapshotID int64 // Snapshot envolvido (quando aplicável)
	Details    string
}

// Error implementa a interface error
func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RankingError) Unwrap() error {
	return e.Err
}

// NewRankingError cria um novo RankingError
func NewRankingError(err error, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Details: details,
	}
}

// NewRankingErrorWithID cria um novo RankingError com o id do snapshot
func NewRankingErrorWithID(err error, snapshotID int64, details string) *RankingError {
	return &RankingError{
		Err:        err,
		SnapshotID: snapshotID,
		Details:    details,
	}
}
