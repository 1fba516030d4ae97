package models

// UserListQuery holds the raw listing parameters from the API boundary.
// PageNumber and PageSize of 0 mean "no pagination bounds". Search is
// "field:value", Sort is "field:order"; empty strings mean defaults.
type UserListQuery struct {
	PageNumber int
	PageSize   int
	Search     string
	Sort       string
}

// UserListParams is the validated query handed to the repository.
// Field names have already been checked against the whitelists.
type UserListParams struct {
	SearchField string // empty means no filter
	SearchValue string
	SortField   string
	SortOrder   string // "asc" or "desc"
	Limit       int    // 0 means no limit
	Offset      int
}

// UserListResult is the page window returned by the listing endpoint.
type UserListResult struct {
	PageNumber      int    `json:"page_number"`
	PageSize        int    `json:"page_size"`
	Count           int    `json:"count"`
	TotalPages      int    `json:"total_pages"`
	HasPreviousPage bool   `json:"has_previous_page"`
	HasNextPage     bool   `json:"has_next_page"`
	Users           []User `json:"users"`
}
