// Package file provides a DataSource which reads data from a set of files on disk, matched by a glob.
// Files are parsed concurrently and stacked in lexicographic path order, so every file must respect
// the same Schema.
package file
