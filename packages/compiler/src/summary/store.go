package summary

import (
	"fmt"
	"net/url"

	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"fec-go/packages/compiler/src/options"
)

// Store reads summary files through the invocation's file access capability
// and memoizes the raw bytes in its byte store, keyed by URI. Summaries are
// immutable for the duration of an invocation, so a cached blob is never
// invalidated.
type Store struct {
	fs    afero.Fs
	cache *lru.Cache[string, []byte]
}

// NewStore builds a store over the file system and byte cache the options
// carry.
func NewStore(o *options.CompilerOptions) *Store {
	return &Store{fs: o.FileSystem, cache: o.ByteStore}
}

// Bytes returns the raw bytes of the summary at uri, reading through the
// cache.
func (s *Store) Bytes(uri *url.URL) ([]byte, error) {
	key := uri.String()
	if blob, ok := s.cache.Get(key); ok {
		return blob, nil
	}
	blob, err := afero.ReadFile(s.fs, filePath(uri))
	if err != nil {
		return nil, fmt.Errorf("summary: unable to read %s: %w", key, err)
	}
	s.cache.Add(key, blob)
	return blob, nil
}

// Preload reads every given summary, accumulating the failures so the caller
// sees all missing inputs at once.
func (s *Store) Preload(uris []*url.URL) error {
	var err error
	for _, uri := range uris {
		if _, readErr := s.Bytes(uri); readErr != nil {
			err = multierror.Append(err, readErr)
		}
	}
	return err
}

// filePath maps a summary URI onto the file access capability. Only the path
// component matters; file-scheme URIs and bare paths resolve identically.
func filePath(uri *url.URL) string {
	if uri.Path != "" {
		return uri.Path
	}
	return uri.Opaque
}
