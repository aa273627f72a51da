// Package errors holds sentinel errors and the CLI/TUI message handlers.
package errors

import goerrors "errors"

var (
	// ErrMissingNode means the report lacks a node the view state requires.
	ErrMissingNode = goerrors.New("required report node missing")
	// ErrUnknownFormat means an output format name is not supported.
	ErrUnknownFormat = goerrors.New("unknown output format")
	// ErrUnknownSearchMode means a search mode name is not supported.
	ErrUnknownSearchMode = goerrors.New("unknown search mode")
)
