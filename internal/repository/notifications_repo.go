package repository

import (
	"context"
	"encoding/json"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jmoiron/sqlx"
)

// NotificationsRepo реализует NotificationSink поверх таблицы notifications.
type NotificationsRepo struct{ db *sqlx.DB }

func NewNotificationsRepo(db *sqlx.DB) *NotificationsRepo { return &NotificationsRepo{db: db} }

func (r *NotificationsRepo) Create(ctx context.Context, n domain.Notification) error {
	userIDs, err := json.Marshal(n.UserIDs)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
insert into notifications(id,message,type,entity,path,user_ids)
values($1,$2,$3,$4,$5,$6)`,
		n.ID, n.Message, string(n.Type), n.Entity, n.Path, string(userIDs))
	return err
}
