package request

import (
	"jobradar/internal/domain/posting"
	domsub "jobradar/internal/domain/subscription"
)

type PreferencesRequest struct {
	Keywords        []string `json:"keywords"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experienceLevel" binding:"omitempty,oneof=junior mid-level senior lead manager director"`
	SalaryMin       *float64 `json:"salaryMin"`
	SalaryMax       *float64 `json:"salaryMax"`
	SalaryCurrency  string   `json:"salaryCurrency"`
	JobTypes        []string `json:"jobTypes"`
	Industries      []string `json:"industries"`
}

func (r *PreferencesRequest) ToDomain() domsub.Preferences {
	return domsub.Preferences{
		Keywords:        r.Keywords,
		Location:        r.Location,
		ExperienceLevel: posting.ExperienceLevel(r.ExperienceLevel),
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryCurrency:  r.SalaryCurrency,
		JobTypes:        r.JobTypes,
		Industries:      r.Industries,
	}
}

type SubscribeRequest struct {
	Email       string             `json:"email" binding:"required,email"`
	Type        string             `json:"type" binding:"omitempty,oneof=daily_jobs weekly_jobs application_updates new_matches"`
	Frequency   string             `json:"frequency" binding:"required,oneof=daily weekly instant"`
	Preferences PreferencesRequest `json:"preferences"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token"`
}

type UpdatePreferencesRequest struct {
	Frequency   string             `json:"frequency" binding:"required,oneof=daily weekly instant"`
	Preferences PreferencesRequest `json:"preferences"`
}
