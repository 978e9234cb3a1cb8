// Package attachments содержит общие для клиента и relay примитивы работы
// с content-addressed вложениями: хеширование байтов и разбор
// строк-локаторов litepad://images/<hash><ext> в телах документов.
package attachments

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// MaxByteSize — предел размера вложения. Превышение отклоняется до начала
// передачи (Capacity ошибка).
const MaxByteSize = 32 << 20 // 32 MiB

// локатор вложения в теле документа: litepad://images/<sha256 hex><.ext>
var locatorRe = regexp.MustCompile(`litepad://images/([0-9a-f]{64})(\.[A-Za-z0-9]+)?`)

// Ref представляет ссылку на вложение, извлечённую из тела документа
type Ref struct {
	Hash      string
	Extension string // с ведущей точкой, может быть пустым
}

// HashBytes возвращает SHA-256 hex от байтов — канонический ключ вложения
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Locator собирает строку-локатор для вставки в тело документа
func Locator(hash, extension string) string {
	return "litepad://images/" + hash + extension
}

// ScanBody извлекает все ссылки на вложения из текста тела документа.
// Повторные ссылки на один хеш схлопываются.
func ScanBody(body string) []Ref {
	matches := locatorRe.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		refs = append(refs, Ref{Hash: m[1], Extension: m[2]})
	}
	return refs
}
