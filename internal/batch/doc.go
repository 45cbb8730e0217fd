// Package batch finds the images to process in a directory and collects
// the translation of each one, keyed by file name.
package batch
