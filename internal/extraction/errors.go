package extraction

import "fmt"

// SourceError represents a missing or unreadable input source file. Fatal.
type SourceError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("source error: %s: %s", e.Path, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// BlockError represents a definition block that could not be turned into a record.
// Recoverable: the block is skipped and the run continues.
type BlockError struct {
	ID      string
	Message string
}

func (e *BlockError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("skipping block %s: %s", e.ID, e.Message)
	}
	return fmt.Sprintf("skipping block: %s", e.Message)
}
