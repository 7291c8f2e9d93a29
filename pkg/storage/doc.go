// Package storage manages the output directory.
//
// Writes go to a temporary file first and are renamed into place, so a
// failed download never leaves a truncated wallpaper behind.
package storage
