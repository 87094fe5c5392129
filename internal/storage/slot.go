// Package storage provides named durable slots. A slot holds one document
// which is read wholesale at startup and overwritten wholesale on every
// write; there are no partial updates.
package storage

// Slot is a single named durable storage location.
type Slot interface {
	// Read returns the stored document. ok is false when nothing has been
	// written yet; that is not an error.
	Read() (data []byte, ok bool, err error)

	// Write replaces the stored document. The write is a full overwrite
	// and is idempotent.
	Write(data []byte) error
}
