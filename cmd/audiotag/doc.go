// Command audiotag tags an audiobook with metadata from the Audnexus catalog
// and files it under <output-root>/<author>/<title> <asin>/.
//
// Usage:
//
//	audiotag --asin B0XXXXXXX [--merge] [--force] <input> [output-root]
//	audiotag show <asin>
//	audiotag check [output-root]
//	audiotag config init|validate
//
// Without --force the metadata summary is printed and the run waits for a
// y/n answer on standard input.
package main
