package repositories

import (
	"context"
	"database/sql"
	"time"

	"marketplace-service/internal/module/notification/models/entity"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// inbox
	InsertNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	FindNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int, offset int) ([]entity.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID int64, id int64) (entity.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	// scheduled
	InsertScheduled(ctx context.Context, s entity.Scheduled) (bool, error)
	CancelScheduledByBooking(ctx context.Context, bookingID int64) (int64, error)
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]entity.Scheduled, error)
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const notificationColumns = `id, user_id, title, message, type, is_read, created_at`

func (r *repositories) InsertNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	query := `INSERT INTO notifications (user_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING ` + notificationColumns
	var out entity.Notification
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query, n.UserID, n.Title, n.Message, n.Type).StructScan(&out)
	if err != nil {
		r.log.Error(ctx, "error insert notification", err)
		return entity.Notification{}, errors.InternalServerError("error insert notification")
	}
	return out, nil
}

func (r *repositories) FindNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int, offset int) ([]entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1 AND ($2 = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`
	ns := []entity.Notification{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ns, query, userID, unreadOnly, limit, offset); err != nil {
		r.log.Error(ctx, "error find notifications", err)
		return nil, errors.InternalServerError("error find notifications")
	}
	return ns, nil
}

func (r *repositories) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		r.log.Error(ctx, "error count unread notifications", err)
		return 0, errors.InternalServerError("error count unread notifications")
	}
	return count, nil
}

// MarkRead only touches rows owned by userID; anything else reads as not found.
func (r *repositories) MarkRead(ctx context.Context, userID int64, id int64) (entity.Notification, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2 RETURNING ` + notificationColumns
	var out entity.Notification
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query, id, userID).StructScan(&out)
	if err != nil {
		return entity.Notification{}, database.Translate(err, "notification not found", "error mark notification read")
	}
	return out, nil
}

func (r *repositories) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		r.log.Error(ctx, "error mark all notifications read", err)
		return 0, errors.InternalServerError("error mark all notifications read")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// InsertScheduled reports false when a row with the same idempotency key exists.
func (r *repositories) InsertScheduled(ctx context.Context, s entity.Scheduled) (bool, error) {
	query := `INSERT INTO scheduled_notifications
		(idempotency_key, user_id, booking_id, title, message, type, due_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		ON CONFLICT (idempotency_key) DO NOTHING`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		s.IdempotencyKey, s.UserID, s.BookingID, s.Title, s.Message, s.Type, s.DueAt)
	if err != nil {
		r.log.Error(ctx, "error insert scheduled notification", err)
		return false, errors.InternalServerError("error insert scheduled notification")
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *repositories) CancelScheduledByBooking(ctx context.Context, bookingID int64) (int64, error) {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE scheduled_notifications SET status = 'cancelled' WHERE booking_id = $1 AND status = 'pending'`, bookingID)
	if err != nil {
		r.log.Error(ctx, "error cancel scheduled notifications", err)
		return 0, errors.InternalServerError("error cancel scheduled notifications")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ClaimDue locks up to limit due rows for the current transaction. Rows held by
// a concurrent sweep are skipped rather than waited on.
func (r *repositories) ClaimDue(ctx context.Context, now time.Time, limit int) ([]entity.Scheduled, error) {
	query := `SELECT id, idempotency_key, user_id, booking_id, title, message, type, due_at, status, attempts, sent_at, created_at
		FROM scheduled_notifications
		WHERE status = 'pending' AND due_at <= $1
		ORDER BY due_at ASC, id ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED`
	rows := []entity.Scheduled{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &rows, query, now, limit); err != nil {
		r.log.Error(ctx, "error claim due notifications", err)
		return nil, errors.InternalServerError("error claim due notifications")
	}
	return rows, nil
}

func (r *repositories) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE scheduled_notifications SET status = 'sent', sent_at = $1, attempts = attempts + 1 WHERE id = $2 AND status = 'pending'`,
		sql.NullTime{Time: sentAt, Valid: true}, id)
	if err != nil {
		r.log.Error(ctx, "error mark scheduled notification sent", err)
		return errors.InternalServerError("error mark scheduled notification sent")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Conflict("scheduled notification is no longer pending")
	}
	return nil
}
