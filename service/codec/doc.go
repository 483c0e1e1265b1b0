// Package codec reads and writes second-generation PLG process documents.
//
// Decoding runs three passes over the document elements so that sequences
// and owner links may name components declared later in the document:
// nodes (data objects first, then events, tasks and gateways together with
// their nested data object references), then sequences, then data object
// owners. A malformed sequence or owner link is skipped and reported as a
// Warning; the rest of the document is still imported.
//
// First-generation (zip container) documents are recognised and rejected
// with ErrUnsupportedFormat.
package codec
