package service

import (
	"context"
	"fmt"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/google/uuid"
)

type InvitedAppender interface {
	AppendInvited(ctx context.Context, hireID string, e domain.CandidateEntry) error
}

// InvitationService переводит кандидата lobby -> invited.
type InvitationService struct {
	hires HireGetter
	cands InvitedAppender
}

func NewInvitationService(hires HireGetter, cands InvitedAppender) *InvitationService {
	return &InvitationService{hires: hires, cands: cands}
}

// Invite дописывает invited-запись при наличии freelancerId в lobby.
// Проверка и запись — один условный insert в хранилище; совпадение
// dehixTalentId не требуется.
func (s *InvitationService) Invite(ctx context.Context, hireID, freelancerID, talentID string) (domain.HireRequest, error) {
	if freelancerID == "" || talentID == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: freelancerId and dehixTalentId required", domain.ErrValidation)
	}
	entry := domain.CandidateEntry{
		ID:            uuid.NewString(),
		FreelancerID:  freelancerID,
		DehixTalentID: talentID,
		Status:        domain.InvitedPending,
	}
	if err := s.cands.AppendInvited(ctx, hireID, entry); err != nil {
		return domain.HireRequest{}, err
	}
	return s.hires.Get(ctx, hireID)
}
