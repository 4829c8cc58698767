package entity

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCreationFailed   = errors.New("document creation failed")
	ErrUploadFailed     = errors.New("upload failed")
	ErrUnexpectedStatus = errors.New("unexpected status")
)
