package dto

type RecordPageViewRequest struct {
	Path      string `json:"path" validate:"required,max=500"`
	Referrer  string `json:"referrer" validate:"omitempty,max=500"`
	VisitorID string `json:"visitor_id" validate:"omitempty,max=64"`
}

type RecordServiceViewRequest struct {
	ServiceName string `json:"service_name" validate:"required,max=150"`
	VisitorID   string `json:"visitor_id" validate:"omitempty,max=64"`
}

type RecordConsentRequest struct {
	VisitorID string `json:"visitor_id" validate:"required,max=64"`
	Accepted  *bool  `json:"accepted" validate:"required"`
}

// =============================
// 📦 Summary response
// =============================

type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type AnalyticsSummaryDTO struct {
	TotalPageViews  int64       `json:"total_page_views"`
	UniqueVisitors  int64       `json:"unique_visitors"`
	TopPages        []PathCount `json:"top_pages"`
	TopServices     []NameCount `json:"top_services"`
	TopReferrers    []NameCount `json:"top_referrers"`
	ConsentAccepted int64       `json:"consent_accepted"`
	ConsentDeclined int64       `json:"consent_declined"`
	RangeDays       int         `json:"range_days"`
}
