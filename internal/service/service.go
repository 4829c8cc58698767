package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/ivanmr/edmsup/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type EDMS interface {
	UploadFile(ctx context.Context, documentName string, content []byte) (entity.UploadedFile, error)
	DownloadToFile(ctx context.Context, fileURL string, destinationPath string) error
	FetchBytes(ctx context.Context, fileURL string) ([]byte, error)
}

type Service struct {
	edms EDMS
}

func New(edms EDMS) *Service {
	return &Service{
		edms: edms,
	}
}

// UploadDocument reads filePath and stores it in the EDMS under label.
// An empty label falls back to the file's base name.
func (s *Service) UploadDocument(ctx context.Context, filePath, label string) (entity.UploadedFile, error) {
	err := ValidateUploadParams(filePath)
	if err != nil {
		return entity.UploadedFile{}, err
	}

	if label == "" {
		label = filepath.Base(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return entity.UploadedFile{}, fmt.Errorf("read file: %w", err)
	}

	uploaded, err := s.edms.UploadFile(ctx, label, content)
	if err != nil {
		return entity.UploadedFile{}, fmt.Errorf("upload file: %w", err)
	}

	slog.InfoContext(ctx, "document uploaded",
		"label", label,
		"file_id", uploaded.FileID,
		"mime_type", uploaded.MimeType,
	)

	return uploaded, nil
}

func (s *Service) DownloadDocument(ctx context.Context, fileURL, destinationPath string) error {
	err := ValidateDownloadParams(fileURL, destinationPath)
	if err != nil {
		return err
	}

	err = s.edms.DownloadToFile(ctx, fileURL, destinationPath)
	if err != nil {
		return fmt.Errorf("download to file: %w", err)
	}

	slog.InfoContext(ctx, "document downloaded", "url", fileURL, "destination", destinationPath)

	return nil
}

// FetchDocument loads the file behind fileURL into memory, named after the
// last segment of the URL path.
func (s *Service) FetchDocument(ctx context.Context, fileURL string) (entity.DownloadedDocument, error) {
	err := ValidateFetchParams(fileURL)
	if err != nil {
		return entity.DownloadedDocument{}, err
	}

	data, err := s.edms.FetchBytes(ctx, fileURL)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("fetch bytes: %w", err)
	}

	return entity.DownloadedDocument{
		Name: documentNameFromURL(fileURL),
		Data: data,
	}, nil
}

func documentNameFromURL(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}

	return name
}
