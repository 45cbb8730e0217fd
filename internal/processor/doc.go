// Package processor contains the core batch logic of imgtrans. It walks the
// images of a directory one at a time, extracts each image's text, detects
// its language and translates it, and collects the translations by file
// name. It also prints the final summary.
package processor
