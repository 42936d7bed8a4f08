package resume

import (
	"time"

	"jobradar/internal/domain/posting"

	"github.com/google/uuid"
)

// Record is one parsed resume upload. Keywords, the education flag and the
// experience level are derived once at creation and never recomputed on read.
type Record struct {
	ID              uuid.UUID               `json:"id"`
	UserID          uuid.UUID               `json:"userId"`
	Filename        string                  `json:"filename"`
	OriginalName    string                  `json:"originalName"`
	FileSize        int64                   `json:"fileSize"`
	UploadDate      time.Time               `json:"uploadDate"`
	ExtractedText   string                  `json:"-"`
	Keywords        []string                `json:"keywords"`
	Education       bool                    `json:"education"`
	ExperienceLevel posting.ExperienceLevel `json:"experienceLevel"`
	TextLength      int                     `json:"textLength"`
	IsActive        bool                    `json:"isActive"`
}
