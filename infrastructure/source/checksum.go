package source

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Checksum identifica o conteúdo lido; é gravado junto com o snapshot
func Checksum(data []byte) string {
	digest := xxhash.New()
	_, _ = digest.Write(data)
	return hex.EncodeToString(digest.Sum(nil))
}
