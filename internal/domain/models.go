package domain

import (
	"errors"
	"time"
)

type HireStatus string

const (
	HireAdded    HireStatus = "ADDED"
	HireApproved HireStatus = "APPROVED"
	HireClosed   HireStatus = "CLOSED"
)

// Stage — этап кандидата внутри pipeline. Записи не перемещаются между
// этапами, а дописываются: история остаётся как audit trail.
type Stage string

const (
	StageLobby    Stage = "LOBBY"
	StageInvited  Stage = "INVITED"
	StageSelected Stage = "SELECTED"
	StageRejected Stage = "REJECTED"
)

const InvitedPending = "PENDING"

var (
	ErrNotFound             = errors.New("hire request not found")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrFreelancerNotFound   = errors.New("freelancer not found")
	ErrNotInLobby           = errors.New("freelancer not in lobby")
	ErrNotInvited           = errors.New("freelancer not invited")
	ErrValidation           = errors.New("validation failed")
	ErrInsufficientConnects = errors.New("insufficient connects")
)

// HireRequest — агрегат одной потребности в найме; принадлежит бизнесу,
// который его создал.
type HireRequest struct {
	ID                 string
	BusinessID         string
	DomainID           string
	DomainName         string
	SkillID            string
	SkillName          string
	Description        string
	Experience         string
	Status             HireStatus
	Visible            bool
	Bookmarked         bool
	FreelancerRequired int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	InLobby  []CandidateEntry
	Invited  []CandidateEntry
	Selected []CandidateEntry
	Rejected []CandidateEntry
}

// CandidateEntry — одна запись упорядоченного лога кандидатов.
// Status заполняется только для этапа INVITED.
type CandidateEntry struct {
	ID            string
	FreelancerID  string
	DehixTalentID string
	Status        string
}

type Business struct {
	ID          string
	CompanyName string
	Connects    int
}

type FreelancerProfile struct {
	ID        string
	UserName  string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

type NotificationType string

const NotificationHire NotificationType = "HIRE"

// Notification — запись для NotificationSink; доставка best-effort.
type Notification struct {
	ID      string
	Message string
	Type    NotificationType
	Entity  string
	Path    string
	UserIDs []string
}
