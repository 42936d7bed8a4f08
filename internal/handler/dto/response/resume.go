package response

import (
	"time"

	"jobradar/internal/usecase/commands"
)

type ResumeUploadResponse struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	OriginalName    string    `json:"originalName"`
	FileSize        int64     `json:"fileSize"`
	UploadDate      time.Time `json:"uploadDate"`
	Keywords        []string  `json:"keywords"`
	Education       bool      `json:"education"`
	ExperienceLevel string    `json:"experienceLevel"`
	TextLength      int       `json:"textLength"`
}

func FromUploadResult(r *commands.ResumeUploadResult) ResumeUploadResponse {
	keywords := r.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ResumeUploadResponse{
		ID:              r.ID.String(),
		Filename:        r.Filename,
		OriginalName:    r.OriginalName,
		FileSize:        r.FileSize,
		UploadDate:      r.UploadDate,
		Keywords:        keywords,
		Education:       r.Education,
		ExperienceLevel: string(r.ExperienceLevel),
		TextLength:      r.TextLength,
	}
}
