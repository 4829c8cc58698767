package edms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ivanmr/edmsup/internal/entity"
)

const (
	defaultTimeout = time.Second * 30

	documentTypeID  = 1
	uploadFieldName = "file_new"
	uploadAction    = "replace"
)

type EDMS struct {
	client   *http.Client
	baseURL  string
	username string
	password string
}

// NewClient builds a client for one EDMS instance. Credentials are attached
// per request, so the underlying http.Client is safe to share.
func NewClient(baseURL, username, password string, timeout time.Duration) *EDMS {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &EDMS{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
}

type CreateDocumentRequest struct {
	DocumentTypeID int    `json:"document_type_id"`
	Label          string `json:"label"`
}

// Pointer fields distinguish a missing key from an empty value.
type (
	CreateDocumentResponse struct {
		FileListURL *string `json:"file_list_url"`
		URL         *string `json:"url"`
	}

	DocumentResponse struct {
		FileLatest *FileLatest `json:"file_latest"`
	}

	FileLatest struct {
		Filename    *string `json:"filename"`
		Mimetype    *string `json:"mimetype"`
		DownloadURL *string `json:"download_url"`
		ID          *string `json:"id"`
	}
)

// UploadFile creates a document record, attaches content to it and returns
// the stored file's metadata. The record created in the first step is not
// removed if a later step fails; the caller owns the orphan.
func (c *EDMS) UploadFile(ctx context.Context, documentName string, content []byte) (entity.UploadedFile, error) {
	if strings.TrimSpace(documentName) == "" {
		return entity.UploadedFile{}, fmt.Errorf("%w: empty document name", entity.ErrInvalidArgument)
	}

	created, err := c.createDocument(ctx, documentName)
	if err != nil {
		return entity.UploadedFile{}, fmt.Errorf("create document: %w", err)
	}

	// The service historically rejects the response only when both URLs are
	// absent; a response with one of the two still goes forward.
	if created.FileListURL == nil && created.URL == nil {
		return entity.UploadedFile{},
			fmt.Errorf("%w: response has neither file_list_url nor url", entity.ErrCreationFailed)
	}

	err = c.uploadContent(ctx, deref(created.FileListURL), documentName, content)
	if err != nil {
		return entity.UploadedFile{}, err
	}

	latest, err := c.documentFile(ctx, deref(created.URL))
	if err != nil {
		return entity.UploadedFile{}, err
	}

	if created.FileListURL == nil || created.URL == nil ||
		latest.Filename == nil || latest.Mimetype == nil || latest.DownloadURL == nil || latest.ID == nil {
		return entity.UploadedFile{}, fmt.Errorf("%w: incomplete file metadata", entity.ErrUploadFailed)
	}

	return entity.UploadedFile{
		FileCollectionURL: *created.FileListURL,
		DocumentURL:       *created.URL,
		FileName:          *latest.Filename,
		MimeType:          *latest.Mimetype,
		FileID:            *latest.ID,
		DownloadURL:       *latest.DownloadURL,
	}, nil
}

func (c *EDMS) createDocument(ctx context.Context, label string) (CreateDocumentResponse, error) {
	jsonData, err := json.Marshal(CreateDocumentRequest{
		DocumentTypeID: documentTypeID,
		Label:          label,
	})
	if err != nil {
		return CreateDocumentResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/", bytes.NewReader(jsonData))
	if err != nil {
		return CreateDocumentResponse{}, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return CreateDocumentResponse{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	var data CreateDocumentResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return CreateDocumentResponse{}, fmt.Errorf("decode response: %w", err)
	}

	return data, nil
}

func (c *EDMS) uploadContent(ctx context.Context, uploadURL, fileName string, content []byte) error {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(uploadFieldName, fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}

	if _, err = part.Write(content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}

	if err = w.WriteField("action_name", uploadAction); err != nil {
		return fmt.Errorf("write action field: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%w: status %d: %s", entity.ErrUploadFailed, resp.StatusCode, body)
	}

	return nil
}

func (c *EDMS) documentFile(ctx context.Context, documentURL string) (FileLatest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return FileLatest{}, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return FileLatest{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FileLatest{}, fmt.Errorf("%w: status %d", entity.ErrUnexpectedStatus, resp.StatusCode)
	}

	var data DocumentResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return FileLatest{}, fmt.Errorf("decode response: %w", err)
	}

	if data.FileLatest == nil {
		return FileLatest{}, fmt.Errorf("%w: response has no file_latest", entity.ErrUploadFailed)
	}

	return *data.FileLatest, nil
}

// DownloadToFile streams fileURL into destinationPath. The destination is
// created exclusively: an existing file is never overwritten.
func (c *EDMS) DownloadToFile(ctx context.Context, fileURL, destinationPath string) error {
	if fileURL == "" || destinationPath == "" {
		return fmt.Errorf("%w: empty file url or destination path", entity.ErrInvalidArgument)
	}

	resp, err := c.get(ctx, fileURL)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	out, err := os.OpenFile(destinationPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}

	defer out.Close()

	if _, err = io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}

	return nil
}

// FetchBytes returns the full body of fileURL in memory. No size limit is
// enforced; the caller owns memory pressure on large files.
func (c *EDMS) FetchBytes(ctx context.Context, fileURL string) ([]byte, error) {
	if fileURL == "" {
		return nil, fmt.Errorf("%w: empty file url", entity.ErrInvalidArgument)
	}

	resp, err := c.get(ctx, fileURL)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func (c *EDMS) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()

		return nil, fmt.Errorf("%w: status %d", entity.ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
