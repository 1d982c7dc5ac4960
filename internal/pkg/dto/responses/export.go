package responses

type ExportResult struct {
	Filename string `json:"filename"`
	RowCount int    `json:"rowCount"`
}

type AttachmentUpload struct {
	ObjectName  string `json:"objectName"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"downloadUrl"`
}
