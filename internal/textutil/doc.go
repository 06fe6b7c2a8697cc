// Package textutil provides sanitization for library path segments and lock
// file tokens.
//
// Catalog titles and author names become directory and file names. They keep
// their published spelling; only path separators and NUL bytes are replaced
// after NFC normalization.
package textutil
