package service

import (
	"context"
	"errors"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
)

// fakeStore повторяет семантику хранилища в памяти: append-only лог
// кандидатов, условные переходы, списание connects при создании.
type fakeStore struct {
	requests      map[string]*domain.HireRequest
	businesses    map[string]*domain.Business
	profiles      map[string]domain.FreelancerProfile
	notifications []domain.Notification
	sinkErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests:   map[string]*domain.HireRequest{},
		businesses: map[string]*domain.Business{},
		profiles:   map[string]domain.FreelancerProfile{},
	}
}

func (f *fakeStore) addBusiness(id string, connects int) {
	f.businesses[id] = &domain.Business{ID: id, CompanyName: id, Connects: connects}
}

func (f *fakeStore) addRequest(hr domain.HireRequest) {
	cp := hr
	f.requests[hr.ID] = &cp
}

func (f *fakeStore) CreateWithDebit(ctx context.Context, req domain.HireRequest, cost int) (domain.HireRequest, error) {
	b, ok := f.businesses[req.BusinessID]
	if !ok {
		return domain.HireRequest{}, domain.ErrBusinessNotFound
	}
	if b.Connects < cost {
		return domain.HireRequest{}, domain.ErrInsufficientConnects
	}
	b.Connects -= cost
	f.addRequest(req)
	return req, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (domain.HireRequest, error) {
	hr, ok := f.requests[id]
	if !ok {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	return *hr, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, req domain.HireRequest) (domain.HireRequest, error) {
	hr, ok := f.requests[id]
	if !ok {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	req.ID = hr.ID
	req.BusinessID = hr.BusinessID
	req.InLobby, req.Invited, req.Selected, req.Rejected = hr.InLobby, hr.Invited, hr.Selected, hr.Rejected
	*hr = req
	return *hr, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeStore) ListByBusiness(ctx context.Context, businessID string) ([]domain.HireRequest, error) {
	var out []domain.HireRequest
	for _, hr := range f.requests {
		if hr.BusinessID == businessID {
			out = append(out, *hr)
		}
	}
	return out, nil
}

func (f *fakeStore) SetStatusVisibility(ctx context.Context, id string, status *string, visible *bool) (domain.HireRequest, error) {
	hr, ok := f.requests[id]
	if !ok {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	if status != nil {
		hr.Status = domain.HireStatus(*status)
	}
	if visible != nil {
		hr.Visible = *visible
	}
	return *hr, nil
}

func (f *fakeStore) SetBookmarked(ctx context.Context, id string, bookmarked bool) (domain.HireRequest, error) {
	hr, ok := f.requests[id]
	if !ok {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	hr.Bookmarked = bookmarked
	return *hr, nil
}

func (f *fakeStore) BusinessByID(ctx context.Context, id string) (domain.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return domain.Business{}, domain.ErrBusinessNotFound
	}
	return *b, nil
}

func (f *fakeStore) AppendLobby(ctx context.Context, hireID string, entries []domain.CandidateEntry) error {
	hr, ok := f.requests[hireID]
	if !ok {
		return domain.ErrNotFound
	}
	hr.InLobby = append(hr.InLobby, entries...)
	return nil
}

func inStage(entries []domain.CandidateEntry, freelancerID string) bool {
	for _, e := range entries {
		if e.FreelancerID == freelancerID {
			return true
		}
	}
	return false
}

func (f *fakeStore) AppendInvited(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	hr, ok := f.requests[hireID]
	if !ok {
		return domain.ErrNotFound
	}
	if !inStage(hr.InLobby, e.FreelancerID) {
		return domain.ErrNotInLobby
	}
	hr.Invited = append(hr.Invited, e)
	return nil
}

func (f *fakeStore) AppendSelected(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	hr, ok := f.requests[hireID]
	if !ok {
		return domain.ErrNotFound
	}
	if !inStage(hr.Invited, e.FreelancerID) {
		return domain.ErrNotInvited
	}
	hr.Selected = append(hr.Selected, e)
	return nil
}

func (f *fakeStore) AppendRejected(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	hr, ok := f.requests[hireID]
	if !ok {
		return domain.ErrNotFound
	}
	if !inStage(hr.InLobby, e.FreelancerID) {
		return domain.ErrNotInLobby
	}
	if !inStage(hr.Invited, e.FreelancerID) {
		return domain.ErrNotInvited
	}
	hr.Rejected = append(hr.Rejected, e)
	return nil
}

func (f *fakeStore) ListStage(ctx context.Context, hireID string, stage domain.Stage) ([]domain.CandidateEntry, error) {
	hr, ok := f.requests[hireID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	switch stage {
	case domain.StageLobby:
		return hr.InLobby, nil
	case domain.StageInvited:
		return hr.Invited, nil
	case domain.StageSelected:
		return hr.Selected, nil
	case domain.StageRejected:
		return hr.Rejected, nil
	}
	return nil, errors.New("unknown stage")
}

func (f *fakeStore) FreelancerByID(ctx context.Context, id string) (domain.FreelancerProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return domain.FreelancerProfile{}, domain.ErrFreelancerNotFound
	}
	return p, nil
}

func (f *fakeStore) Create(ctx context.Context, n domain.Notification) error {
	if f.sinkErr != nil {
		return f.sinkErr
	}
	f.notifications = append(f.notifications, n)
	return nil
}
