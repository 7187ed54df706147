package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ProfilesRepo — read-only доступ к профилям коллабораторов
// (freelancer/business). CRUD профилей живёт вне этого сервиса.
type ProfilesRepo struct{ db *sqlx.DB }

func NewProfilesRepo(db *sqlx.DB) *ProfilesRepo { return &ProfilesRepo{db: db} }

func (r *ProfilesRepo) FreelancerByID(ctx context.Context, id string) (domain.FreelancerProfile, error) {
	var row struct {
		ID        string `db:"id"`
		UserName  string `db:"user_name"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
		Email     string `db:"email"`
		Role      string `db:"role"`
	}
	err := r.db.GetContext(ctx, &row,
		`select id,user_name,first_name,last_name,email,role from freelancers where id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FreelancerProfile{}, domain.ErrFreelancerNotFound
	}
	if err != nil {
		return domain.FreelancerProfile{}, err
	}
	return domain.FreelancerProfile{
		ID:        row.ID,
		UserName:  row.UserName,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Role:      row.Role,
	}, nil
}

func (r *ProfilesRepo) BusinessByID(ctx context.Context, id string) (domain.Business, error) {
	var row struct {
		ID          string `db:"id"`
		CompanyName string `db:"company_name"`
		Connects    int    `db:"connects"`
	}
	err := r.db.GetContext(ctx, &row,
		`select id,company_name,connects from businesses where id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Business{}, domain.ErrBusinessNotFound
	}
	if err != nil {
		return domain.Business{}, err
	}
	return domain.Business{ID: row.ID, CompanyName: row.CompanyName, Connects: row.Connects}, nil
}
