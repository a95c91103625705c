package domain

import "errors"

var (
	ErrDirNotFound       = errors.New("directory not found")
	ErrIndexNotFound     = errors.New("index file not found")
	ErrIndexCorrupt      = errors.New("index file unusable, please re-index")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoModel           = errors.New("no model available")
)
