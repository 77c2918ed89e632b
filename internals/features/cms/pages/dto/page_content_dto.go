package dto

import (
	"time"
)

// ============================
// Response DTO
// ============================

type PageContentDTO struct {
	PageSlug  string         `json:"page_slug"`
	PageTitle string         `json:"page_title"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ============================
// Request DTO
// ============================

type SavePageContentRequest struct {
	Content map[string]any `json:"content" validate:"required"`
}

// PatchOp is one path-level edit applied server-side.
type PatchOp struct {
	Op    string `json:"op" validate:"required,oneof=set append remove swap"`
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value,omitempty"`
	Index int    `json:"index,omitempty"` // remove
	I     int    `json:"i,omitempty"`     // swap
	J     int    `json:"j,omitempty"`     // swap
}

type PatchPageContentRequest struct {
	Ops []PatchOp `json:"ops" validate:"required,min=1,dive"`
}
