// Package logging configures the diagnostic logger used across imgtrans.
// Diagnostics are written with zerolog to stderr so that stdout only carries
// the translated output.
package logging
