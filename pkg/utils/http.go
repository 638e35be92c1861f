package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const downloadUserAgent = "sales-analytics/1.0"

// StatusError é devolvido quando o servidor responde com status diferente de 200
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("erro na requisição: %s status: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// MakeRequest baixa o conteúdo de uma URL. O download é interrompido quando ctx
// é cancelado.
func MakeRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição para %s: %w", url, err)
	}
	req.Header.Set("User-Agent", downloadUserAgent)
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
