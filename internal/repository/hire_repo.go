package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jmoiron/sqlx"
)

type hireRow struct {
	ID                 string    `db:"id"`
	BusinessID         string    `db:"business_id"`
	DomainID           string    `db:"domain_id"`
	DomainName         string    `db:"domain_name"`
	SkillID            string    `db:"skill_id"`
	SkillName          string    `db:"skill_name"`
	Description        string    `db:"description"`
	Experience         string    `db:"experience"`
	Status             string    `db:"status"`
	Visible            bool      `db:"visible"`
	Bookmarked         bool      `db:"bookmarked"`
	FreelancerRequired int       `db:"freelancer_required"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

const hireColumns = `id,business_id,domain_id,domain_name,skill_id,skill_name,description,experience,status,visible,bookmarked,freelancer_required,created_at,updated_at`

type HireRepo struct {
	db    *sqlx.DB
	cands *CandidatesRepo
}

func NewHireRepo(db *sqlx.DB) *HireRepo {
	return &HireRepo{db: db, cands: NewCandidatesRepo(db)}
}

// CreateWithDebit выполняет списание connects и вставку запроса одной
// транзакцией: при нехватке баланса запрос не создаётся, при сбое вставки
// списание откатывается.
func (r *HireRepo) CreateWithDebit(ctx context.Context, req domain.HireRequest, cost int) (domain.HireRequest, error) {
	err := Tx(r.db, func(tx *sqlx.Tx) error {
		if err := debitConnects(tx, req.BusinessID, cost); err != nil {
			return err
		}
		_, err := tx.Exec(`
insert into hire_requests(id,business_id,domain_id,domain_name,skill_id,skill_name,description,experience,status,visible,bookmarked,freelancer_required)
values($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			req.ID, req.BusinessID, req.DomainID, req.DomainName, req.SkillID, req.SkillName,
			req.Description, req.Experience, string(req.Status), req.Visible, req.Bookmarked, req.FreelancerRequired)
		return err
	})
	if err != nil {
		return domain.HireRequest{}, err
	}
	return r.Get(ctx, req.ID)
}

func (r *HireRepo) Get(ctx context.Context, id string) (domain.HireRequest, error) {
	var row hireRow
	err := r.db.GetContext(ctx, &row, `select `+hireColumns+` from hire_requests where id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.HireRequest{}, err
	}
	return r.attachCandidates(ctx, toDomain(row))
}

// Update обновляет редактируемые поля целиком (PUT-семантика).
func (r *HireRepo) Update(ctx context.Context, id string, req domain.HireRequest) (domain.HireRequest, error) {
	res, err := r.db.ExecContext(ctx, `
update hire_requests
set domain_id=$2,domain_name=$3,skill_id=$4,skill_name=$5,description=$6,experience=$7,
    status=$8,visible=$9,bookmarked=$10,freelancer_required=$11,updated_at=now()
where id=$1`,
		id, req.DomainID, req.DomainName, req.SkillID, req.SkillName, req.Description,
		req.Experience, string(req.Status), req.Visible, req.Bookmarked, req.FreelancerRequired)
	if err != nil {
		return domain.HireRequest{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *HireRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `delete from hire_requests where id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HireRepo) ListByBusiness(ctx context.Context, businessID string) ([]domain.HireRequest, error) {
	var rows []hireRow
	err := r.db.SelectContext(ctx, &rows,
		`select `+hireColumns+` from hire_requests where business_id=$1 order by created_at`, businessID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HireRequest, 0, len(rows))
	for _, row := range rows {
		hr, err := r.attachCandidates(ctx, toDomain(row))
		if err != nil {
			return nil, err
		}
		out = append(out, hr)
	}
	return out, nil
}

// SetStatusVisibility — PATCH-семантика: только переданные поля.
func (r *HireRepo) SetStatusVisibility(ctx context.Context, id string, status *string, visible *bool) (domain.HireRequest, error) {
	res, err := r.db.ExecContext(ctx, `
update hire_requests
set status=coalesce($2,status), visible=coalesce($3,visible), updated_at=now()
where id=$1`, id, status, visible)
	if err != nil {
		return domain.HireRequest{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *HireRepo) SetBookmarked(ctx context.Context, id string, bookmarked bool) (domain.HireRequest, error) {
	res, err := r.db.ExecContext(ctx,
		`update hire_requests set bookmarked=$2, updated_at=now() where id=$1`, id, bookmarked)
	if err != nil {
		return domain.HireRequest{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.HireRequest{}, domain.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *HireRepo) attachCandidates(ctx context.Context, hr domain.HireRequest) (domain.HireRequest, error) {
	byStage, err := r.cands.ListAll(ctx, hr.ID)
	if err != nil {
		return domain.HireRequest{}, err
	}
	hr.InLobby = byStage[domain.StageLobby]
	hr.Invited = byStage[domain.StageInvited]
	hr.Selected = byStage[domain.StageSelected]
	hr.Rejected = byStage[domain.StageRejected]
	return hr, nil
}

func toDomain(row hireRow) domain.HireRequest {
	return domain.HireRequest{
		ID:                 row.ID,
		BusinessID:         row.BusinessID,
		DomainID:           row.DomainID,
		DomainName:         row.DomainName,
		SkillID:            row.SkillID,
		SkillName:          row.SkillName,
		Description:        row.Description,
		Experience:         row.Experience,
		Status:             domain.HireStatus(row.Status),
		Visible:            row.Visible,
		Bookmarked:         row.Bookmarked,
		FreelancerRequired: row.FreelancerRequired,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
