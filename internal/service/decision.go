package service

import (
	"context"
	"fmt"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/google/uuid"
)

type DecisionAppender interface {
	AppendSelected(ctx context.Context, hireID string, e domain.CandidateEntry) error
	AppendRejected(ctx context.Context, hireID string, e domain.CandidateEntry) error
}

// DecisionService фиксирует терминальный исход приглашённого кандидата.
// Исходы не взаимоисключающие: reject после select допустим.
type DecisionService struct {
	hires HireGetter
	cands DecisionAppender
}

func NewDecisionService(hires HireGetter, cands DecisionAppender) *DecisionService {
	return &DecisionService{hires: hires, cands: cands}
}

// Select требует присутствия freelancerId среди приглашённых.
func (s *DecisionService) Select(ctx context.Context, hireID, freelancerID, talentID string) (domain.HireRequest, error) {
	if freelancerID == "" || talentID == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: freelancerId and dehixTalentId required", domain.ErrValidation)
	}
	entry := domain.CandidateEntry{
		ID:            uuid.NewString(),
		FreelancerID:  freelancerID,
		DehixTalentID: talentID,
	}
	if err := s.cands.AppendSelected(ctx, hireID, entry); err != nil {
		return domain.HireRequest{}, err
	}
	return s.hires.Get(ctx, hireID)
}

// Reject требует обоих предусловий: lobby и invited. Ошибка называет то
// предусловие, которое не выполнено.
func (s *DecisionService) Reject(ctx context.Context, hireID, freelancerID, talentID string) (domain.HireRequest, error) {
	if freelancerID == "" || talentID == "" {
		return domain.HireRequest{}, fmt.Errorf("%w: freelancerId and dehixTalentId required", domain.ErrValidation)
	}
	entry := domain.CandidateEntry{
		ID:            uuid.NewString(),
		FreelancerID:  freelancerID,
		DehixTalentID: talentID,
	}
	if err := s.cands.AppendRejected(ctx, hireID, entry); err != nil {
		return domain.HireRequest{}, err
	}
	return s.hires.Get(ctx, hireID)
}
