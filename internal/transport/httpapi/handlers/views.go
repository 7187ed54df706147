package handlers

import (
	"time"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/aditya-1310/experiment-dehix-sub000/internal/service"
)

type candidateView struct {
	ID            string `json:"id"`
	FreelancerID  string `json:"freelancerId"`
	DehixTalentID string `json:"dehixTalentId"`
	Status        string `json:"status,omitempty"`
}

type hireView struct {
	ID                 string          `json:"id"`
	BusinessID         string          `json:"businessId"`
	DomainID           string          `json:"domainId,omitempty"`
	DomainName         string          `json:"domainName,omitempty"`
	SkillID            string          `json:"skillId,omitempty"`
	SkillName          string          `json:"skillName,omitempty"`
	Description        string          `json:"description"`
	Experience         string          `json:"experience"`
	Status             string          `json:"status"`
	Visible            bool            `json:"visible"`
	Bookmarked         bool            `json:"bookmarked"`
	FreelancerRequired int             `json:"freelancerRequired"`
	FreelancerInLobby  []candidateView `json:"freelancerInLobby"`
	FreelancerInvited  []candidateView `json:"freelancerInvited"`
	FreelancerSelected []candidateView `json:"freelancerSelected"`
	FreelancerRejected []candidateView `json:"freelancerRejected"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func toCandidateViews(entries []domain.CandidateEntry) []candidateView {
	out := make([]candidateView, 0, len(entries))
	for _, e := range entries {
		out = append(out, candidateView{
			ID:            e.ID,
			FreelancerID:  e.FreelancerID,
			DehixTalentID: e.DehixTalentID,
			Status:        e.Status,
		})
	}
	return out
}

func toHireView(hr domain.HireRequest) hireView {
	return hireView{
		ID:                 hr.ID,
		BusinessID:         hr.BusinessID,
		DomainID:           hr.DomainID,
		DomainName:         hr.DomainName,
		SkillID:            hr.SkillID,
		SkillName:          hr.SkillName,
		Description:        hr.Description,
		Experience:         hr.Experience,
		Status:             string(hr.Status),
		Visible:            hr.Visible,
		Bookmarked:         hr.Bookmarked,
		FreelancerRequired: hr.FreelancerRequired,
		FreelancerInLobby:  toCandidateViews(hr.InLobby),
		FreelancerInvited:  toCandidateViews(hr.Invited),
		FreelancerSelected: toCandidateViews(hr.Selected),
		FreelancerRejected: toCandidateViews(hr.Rejected),
		CreatedAt:          hr.CreatedAt,
		UpdatedAt:          hr.UpdatedAt,
	}
}

func toHireViews(hrs []domain.HireRequest) []hireView {
	out := make([]hireView, 0, len(hrs))
	for _, hr := range hrs {
		out = append(out, toHireView(hr))
	}
	return out
}

// rosterView — профиль фрилансера с контекстом этапа; имя контекстного поля
// зависит от списка, из которого он развёрнут.
type rosterView struct {
	ID            string `json:"id"`
	UserName      string `json:"userName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	DehixTalentID string `json:"dehixTalentId,omitempty"`
	InvitedStatus string `json:"invitedStatus,omitempty"`
}

func toRosterViews(entries []service.RosterEntry, stage domain.Stage) []rosterView {
	out := make([]rosterView, 0, len(entries))
	for _, e := range entries {
		v := rosterView{
			ID:        e.Profile.ID,
			UserName:  e.Profile.UserName,
			FirstName: e.Profile.FirstName,
			LastName:  e.Profile.LastName,
			Email:     e.Profile.Email,
			Role:      e.Profile.Role,
		}
		if stage == domain.StageInvited {
			v.InvitedStatus = e.InvitedStatus
		} else {
			v.DehixTalentID = e.DehixTalentID
		}
		out = append(out, v)
	}
	return out
}
