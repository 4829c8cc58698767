package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ivanmr/edmsup/internal/entity"
	"github.com/ivanmr/edmsup/internal/mocks"
	"github.com/ivanmr/edmsup/internal/service"
)

type TestService struct {
	edms *mocks.MockEDMS
	s    *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockEDMS := mocks.NewMockEDMS(ctrl)

	return &TestService{
		edms: mockEDMS,
		s:    service.New(mockEDMS),
	}
}

func TestService_UploadDocument(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	content := []byte("hello, docs")

	filePath := filepath.Join(t.TempDir(), "report.pdf")
	r.NoError(os.WriteFile(filePath, content, 0o600))

	want := entity.UploadedFile{
		FileCollectionURL: "https://edms.local/documents/7/files/",
		DocumentURL:       "https://edms.local/documents/7/",
		FileName:          "report.pdf",
		MimeType:          "application/pdf",
		FileID:            "42",
		DownloadURL:       "https://edms.local/documents/7/files/42/download/",
	}

	ts.edms.EXPECT().
		UploadFile(ctx, "quarterly report", content).
		Return(want, nil)

	got, err := ts.s.UploadDocument(ctx, filePath, "quarterly report")
	r.NoError(err)
	r.Equal(want, got)
}

func TestService_UploadDocument_DefaultLabel(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	content := []byte("x")

	filePath := filepath.Join(t.TempDir(), "scan.png")
	r.NoError(os.WriteFile(filePath, content, 0o600))

	ts.edms.EXPECT().
		UploadFile(ctx, "scan.png", content).
		Return(entity.UploadedFile{FileName: "scan.png"}, nil)

	got, err := ts.s.UploadDocument(ctx, filePath, "")
	r.NoError(err)
	r.Equal("scan.png", got.FileName)
}

func TestService_UploadDocument_EmptyPath(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.UploadDocument(context.Background(), "", "label")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UploadDocument_ClientError(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	filePath := filepath.Join(t.TempDir(), "report.pdf")
	r.NoError(os.WriteFile(filePath, []byte("x"), 0o600))

	ts.edms.EXPECT().
		UploadFile(ctx, "report.pdf", gomock.Any()).
		Return(entity.UploadedFile{}, entity.ErrUploadFailed)

	_, err := ts.s.UploadDocument(ctx, filePath, "")
	r.ErrorIs(err, entity.ErrUploadFailed)
}

func TestService_DownloadDocument(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()

	ts.edms.EXPECT().
		DownloadToFile(ctx, "https://edms.local/f/42/download/", "/tmp/out.pdf").
		Return(nil)

	r.NoError(ts.s.DownloadDocument(ctx, "https://edms.local/f/42/download/", "/tmp/out.pdf"))
}

func TestService_DownloadDocument_InvalidArgs(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	ctx := context.Background()

	require.ErrorIs(t, ts.s.DownloadDocument(ctx, "", "/tmp/out.pdf"), entity.ErrInvalidArgument)
	require.ErrorIs(t, ts.s.DownloadDocument(ctx, "https://edms.local/f", ""), entity.ErrInvalidArgument)
}

func TestService_FetchDocument(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx := context.Background()
	content := []byte("raw bytes")

	ts.edms.EXPECT().
		FetchBytes(ctx, "https://edms.local/files/report.pdf?v=1").
		Return(content, nil)

	doc, err := ts.s.FetchDocument(ctx, "https://edms.local/files/report.pdf?v=1")
	r.NoError(err)
	r.Equal(entity.DownloadedDocument{
		Name: "report.pdf",
		Data: content,
	}, doc)
}

func TestService_FetchDocument_EmptyURL(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.FetchDocument(context.Background(), "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
