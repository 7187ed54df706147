package service

import (
	"context"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"golang.org/x/sync/errgroup"
)

type CandidateLister interface {
	ListStage(ctx context.Context, hireID string, stage domain.Stage) ([]domain.CandidateEntry, error)
}

type ProfileLookup interface {
	FreelancerByID(ctx context.Context, id string) (domain.FreelancerProfile, error)
}

// RosterEntry — профиль фрилансера, развёрнутый из записи лога кандидатов,
// вместе с контекстом этапа.
type RosterEntry struct {
	Profile       domain.FreelancerProfile
	DehixTalentID string
	InvitedStatus string
}

// RosterService разворачивает записи одного этапа в полные профили
// (fan-out чтение к коллаборатору профилей).
type RosterService struct {
	hires    HireGetter
	cands    CandidateLister
	profiles ProfileLookup
}

const rosterFanout = 8

func NewRosterService(hires HireGetter, cands CandidateLister, profiles ProfileLookup) *RosterService {
	return &RosterService{hires: hires, cands: cands, profiles: profiles}
}

func (s *RosterService) Resolve(ctx context.Context, hireID string, stage domain.Stage) ([]RosterEntry, error) {
	if _, err := s.hires.Get(ctx, hireID); err != nil {
		return nil, err
	}
	entries, err := s.cands.ListStage(ctx, hireID, stage)
	if err != nil {
		return nil, err
	}

	out := make([]RosterEntry, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rosterFanout)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			profile, err := s.profiles.FreelancerByID(gctx, e.FreelancerID)
			if err != nil {
				return err
			}
			out[i] = RosterEntry{
				Profile:       profile,
				DehixTalentID: e.DehixTalentID,
				InvitedStatus: e.Status,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
