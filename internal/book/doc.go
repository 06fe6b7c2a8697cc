// Package book holds the audiobook metadata model shared by the catalog
// client, the manifest writer, and the pipeline, plus the pure chapter
// normalization that turns catalog offsets into closed millisecond ranges.
package book
