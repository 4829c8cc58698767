package entity

// UploadedFile describes where a document ended up after its content
// was attached and accepted by the EDMS.
type UploadedFile struct {
	FileCollectionURL string
	DocumentURL       string
	FileName          string
	MimeType          string
	FileID            string
	DownloadURL       string
}

type DownloadedDocument struct {
	Name string
	Data []byte
}
