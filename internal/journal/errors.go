package journal

import "errors"

// Sentinel errors returned across the store's public boundary. Callers
// match them with errors.Is; the wrapped messages are user-visible.
var (
	// ErrStorageFull means the serialized sequence exceeds the soft
	// ceiling and eviction could not help (100 or fewer records). The
	// newest record was NOT dropped silently — the write failed whole.
	ErrStorageFull = errors.New("armazenamento cheio, exporte seus dados")

	// ErrQuotaExceeded is the domain translation of a hard quota fault
	// raised by the storage medium itself.
	ErrQuotaExceeded = errors.New("limite de armazenamento atingido")

	// ErrInvalidFormat means the import document is not JSON or lacks
	// the assessments array.
	ErrInvalidFormat = errors.New("formato de arquivo inválido")

	// ErrNoValidRecords means the import document parsed but contained
	// no structurally valid assessment. The store was left untouched.
	ErrNoValidRecords = errors.New("nenhum registro válido no arquivo")
)
