// Package model defines the data structures shared by the fixer layers.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// File is a discovered source location. Path is the stable identity used for
// reporting and caching; FullPath is where the content actually lives.
type File struct {
	Path      Path
	FullPath  Path
	IsDir     bool
	IsSymlink bool
}

// Ext returns the file extension including the leading dot.
func (f File) Ext() string {
	return filepath.Ext(string(f.Path))
}

// Placeholder reports whether the entry is a directory or symlink that the
// enumeration yielded but that must not be processed.
func (f File) Placeholder() bool {
	return f.IsDir || f.IsSymlink
}

// Unit is a snapshot of a source file taken at the start of a pipeline run.
type Unit struct {
	File File
	Text string
}
