package record

// ListRecordsQuery is bound from the query string of GET /api/v1/records.
type ListRecordsQuery struct {
	Search   string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type ExportQuery struct {
	Search string `form:"q"`
}

// RecordView is the window of filtered records shown for one page.
type RecordView struct {
	Records    []Record `json:"records"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	Pages      []int    `json:"pages"`
}

// ViewState is a copy of the viewer's client-side state.
type ViewState struct {
	SelectedFile string
	Uploading    bool
	SearchTerm   string
	Page         int
	RecordCount  int
}

// UploadResponse is the backend's reply to a successful upload.
type UploadResponse struct {
	Message string `json:"message"`
}

type RefreshResponse struct {
	Count int `json:"count"`
}
