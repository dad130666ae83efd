package knowledge

import "errors"

var (
	// ErrRetrievalUnavailable means the index could not be consulted: the query
	// could not be embedded or no build has succeeded yet. It is distinct from
	// an empty result.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")

	// ErrCatalogUnavailable is logged when the live catalog cannot be read.
	// The refresh continues with the curated corpus only.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	ErrDocumentNotFound = errors.New("document not found")
)
