package service

import "errors"

var (
	ErrMissingFile         = errors.New("no file uploaded")
	ErrNoFileSelected      = errors.New("no file selected")
	ErrUnsupportedFileType = errors.New("file type not allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrNoText              = errors.New("could not extract text from document")
	ErrEmptyQuestion       = errors.New("no question provided")
	ErrSessionNotFound     = errors.New("document session not found")
)
