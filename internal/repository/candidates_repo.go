package repository

import (
	"context"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jmoiron/sqlx"
)

type candidateRow struct {
	ID            string `db:"id"`
	Stage         string `db:"stage"`
	FreelancerID  string `db:"freelancer_id"`
	DehixTalentID string `db:"dehix_talent_id"`
	Status        string `db:"status"`
}

// CandidatesRepo — упорядоченный append-only лог кандидатов. Записи никогда
// не удаляются и не переносятся между этапами.
type CandidatesRepo struct{ db *sqlx.DB }

func NewCandidatesRepo(db *sqlx.DB) *CandidatesRepo { return &CandidatesRepo{db: db} }

// AppendLobby дописывает пачку lobby-записей. Условие exists защищает от
// гонки с конкурентным удалением запроса.
func (r *CandidatesRepo) AppendLobby(ctx context.Context, hireID string, entries []domain.CandidateEntry) error {
	return Tx(r.db, func(tx *sqlx.Tx) error {
		for _, e := range entries {
			res, err := tx.Exec(`
insert into hire_candidates(id,hire_request_id,stage,freelancer_id,dehix_talent_id)
select $1,$2,'LOBBY',$3,$4
where exists (select 1 from hire_requests where id=$2)`,
				e.ID, hireID, e.FreelancerID, e.DehixTalentID)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return domain.ErrNotFound
			}
		}
		return nil
	})
}

// AppendInvited — атомарный условный insert: проверка lobby-членства и запись
// выполняются одним statement. Совпадение требуется только по freelancer_id.
func (r *CandidatesRepo) AppendInvited(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	res, err := r.db.ExecContext(ctx, `
insert into hire_candidates(id,hire_request_id,stage,freelancer_id,dehix_talent_id,status)
select $1,$2,'INVITED',$3,$4,$5
where exists (select 1 from hire_candidates
              where hire_request_id=$2 and stage='LOBBY' and freelancer_id=$3)`,
		e.ID, hireID, e.FreelancerID, e.DehixTalentID, e.Status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classify(ctx, hireID, e.FreelancerID, false)
	}
	return nil
}

func (r *CandidatesRepo) AppendSelected(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	res, err := r.db.ExecContext(ctx, `
insert into hire_candidates(id,hire_request_id,stage,freelancer_id,dehix_talent_id)
select $1,$2,'SELECTED',$3,$4
where exists (select 1 from hire_candidates
              where hire_request_id=$2 and stage='INVITED' and freelancer_id=$3)`,
		e.ID, hireID, e.FreelancerID, e.DehixTalentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classify(ctx, hireID, e.FreelancerID, true)
	}
	return nil
}

// AppendRejected требует обоих предусловий: кандидат был в lobby и был
// приглашён. Взаимного исключения с SELECTED нет.
func (r *CandidatesRepo) AppendRejected(ctx context.Context, hireID string, e domain.CandidateEntry) error {
	res, err := r.db.ExecContext(ctx, `
insert into hire_candidates(id,hire_request_id,stage,freelancer_id,dehix_talent_id)
select $1,$2,'REJECTED',$3,$4
where exists (select 1 from hire_candidates
              where hire_request_id=$2 and stage='LOBBY' and freelancer_id=$3)
  and exists (select 1 from hire_candidates
              where hire_request_id=$2 and stage='INVITED' and freelancer_id=$3)`,
		e.ID, hireID, e.FreelancerID, e.DehixTalentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classify(ctx, hireID, e.FreelancerID, false)
	}
	return nil
}

// classify уточняет, какое предусловие не выполнено: нет самого запроса,
// нет lobby-записи или нет приглашения.
func (r *CandidatesRepo) classify(ctx context.Context, hireID, freelancerID string, wantInvited bool) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`select exists(select 1 from hire_requests where id=$1)`, hireID); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	if wantInvited {
		return domain.ErrNotInvited
	}
	if err := r.db.GetContext(ctx, &exists, `
select exists(select 1 from hire_candidates
              where hire_request_id=$1 and stage='LOBBY' and freelancer_id=$2)`,
		hireID, freelancerID); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotInLobby
	}
	return domain.ErrNotInvited
}

func (r *CandidatesRepo) ListStage(ctx context.Context, hireID string, stage domain.Stage) ([]domain.CandidateEntry, error) {
	var rows []candidateRow
	err := r.db.SelectContext(ctx, &rows, `
select id,stage,freelancer_id,dehix_talent_id,status
from hire_candidates
where hire_request_id=$1 and stage=$2
order by seq`, hireID, string(stage))
	if err != nil {
		return nil, err
	}
	out := make([]domain.CandidateEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CandidateEntry{
			ID:            row.ID,
			FreelancerID:  row.FreelancerID,
			DehixTalentID: row.DehixTalentID,
			Status:        row.Status,
		})
	}
	return out, nil
}

func (r *CandidatesRepo) ListAll(ctx context.Context, hireID string) (map[domain.Stage][]domain.CandidateEntry, error) {
	var rows []candidateRow
	err := r.db.SelectContext(ctx, &rows, `
select id,stage,freelancer_id,dehix_talent_id,status
from hire_candidates
where hire_request_id=$1
order by seq`, hireID)
	if err != nil {
		return nil, err
	}
	out := map[domain.Stage][]domain.CandidateEntry{}
	for _, row := range rows {
		out[domain.Stage(row.Stage)] = append(out[domain.Stage(row.Stage)], domain.CandidateEntry{
			ID:            row.ID,
			FreelancerID:  row.FreelancerID,
			DehixTalentID: row.DehixTalentID,
			Status:        row.Status,
		})
	}
	return out, nil
}
