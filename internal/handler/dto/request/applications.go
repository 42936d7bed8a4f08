package request

type UpdateApplicationStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=applied reviewing interviewing offered rejected withdrawn"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

type AddInterviewRequest struct {
	Round       int    `json:"round" binding:"omitempty,min=1"`
	Date        string `json:"date"`
	Type        string `json:"type" binding:"required,oneof=phone video onsite"`
	Interviewer string `json:"interviewer"`
	Notes       string `json:"notes" binding:"max=2000"`
}

type InterviewOutcomeRequest struct {
	Outcome string `json:"outcome" binding:"required,max=200"`
	Notes   string `json:"notes" binding:"max=2000"`
}

type UpdateSavedJobRequest struct {
	Notes    *string  `json:"notes" binding:"omitempty,max=2000"`
	Priority string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags     []string `json:"tags"`
}
