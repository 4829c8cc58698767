package service

import (
	"fmt"

	"github.com/ivanmr/edmsup/internal/entity"
)

func ValidateUploadParams(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: empty file path", entity.ErrInvalidArgument)
	}

	return nil
}

func ValidateDownloadParams(fileURL string, destinationPath string) error {
	if fileURL == "" || destinationPath == "" {
		return fmt.Errorf("%w: fileURL: %q, destinationPath: %q",
			entity.ErrInvalidArgument, fileURL, destinationPath)
	}

	return nil
}

func ValidateFetchParams(fileURL string) error {
	if fileURL == "" {
		return fmt.Errorf("%w: empty file url", entity.ErrInvalidArgument)
	}

	return nil
}
