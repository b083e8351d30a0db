package storage

import "io"

// BlobStorage persists opaque blobs under a caller-chosen key and resolves
// each key to a publicly addressable URL.
type BlobStorage interface {
	Upload(key string, src io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}
