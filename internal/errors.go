package internal

import "fmt"

// StorageError represents errors accessing the metadata document
type StorageError struct {
	Path string
	Op   string // "read", "parse", "write"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CommitError represents a failed version-control operation
type CommitError struct {
	Dir string
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit error [%s]: %v", e.Dir, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// AnalyzeError represents errors reading a transcript during analysis
type AnalyzeError struct {
	Path string
	Err  error
}

func (e *AnalyzeError) Error() string {
	return fmt.Sprintf("analyze error [%s]: %v", e.Path, e.Err)
}

func (e *AnalyzeError) Unwrap() error {
	return e.Err
}
