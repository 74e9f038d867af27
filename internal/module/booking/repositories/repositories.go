package repositories

import (
	"context"

	"marketplace-service/internal/module/booking/models/entity"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const activeSlotIndex = "bookings_active_slot_idx"

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// lookups
	FindActiveService(ctx context.Context, serviceID int64) (entity.Service, error)
	FindProviderIDByUserID(ctx context.Context, userID int64) (int64, error)
	SlotTaken(ctx context.Context, providerID int64, date string, clock string) (bool, error)
	// bookings
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindDetail(ctx context.Context, id int64) (entity.Detail, error)
	LockDetail(ctx context.Context, id int64) (entity.Detail, error)
	UpdateStatus(ctx context.Context, booking entity.Booking) error
	FindByClient(ctx context.Context, clientID int64, status string) ([]entity.Detail, error)
	FindByProvider(ctx context.Context, providerID int64, status string) ([]entity.Detail, error)
	// stats
	ClientStats(ctx context.Context, clientID int64) (entity.Stats, error)
	ProviderStats(ctx context.Context, providerID int64) (entity.Stats, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const detailQuery = `SELECT b.id, b.client_id, b.service_id, b.provider_id, b.date, b.time, b.total_price,
		b.notes, b.status, b.created_at, b.updated_at,
		pp.user_id AS provider_user_id, s.title AS service_title, s.duration,
		c.name AS client_name, c.email AS client_email, c.phone AS client_phone, c.avatar AS client_avatar,
		p.name AS provider_name, p.phone AS provider_phone, p.avatar AS provider_avatar, pp.address AS provider_address
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	JOIN provider_profiles pp ON pp.id = b.provider_id
	JOIN users c ON c.id = b.client_id
	JOIN users p ON p.id = pp.user_id`

func (r *repositories) FindActiveService(ctx context.Context, serviceID int64) (entity.Service, error) {
	query := `SELECT s.id, s.provider_id, pp.user_id AS provider_user_id, s.title, s.price, s.duration, s.status
		FROM services s
		JOIN provider_profiles pp ON pp.id = s.provider_id
		WHERE s.id = $1 AND s.status = 'active'`
	var service entity.Service
	if err := database.Conn(ctx, r.db).GetContext(ctx, &service, query, serviceID); err != nil {
		return entity.Service{}, database.Translate(err, "service not found or inactive", "error find service")
	}
	return service, nil
}

func (r *repositories) FindProviderIDByUserID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &id, `SELECT id FROM provider_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, database.Translate(err, "provider profile not found", "error find provider profile")
	}
	return id, nil
}

func (r *repositories) SlotTaken(ctx context.Context, providerID int64, date string, clock string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE provider_id = $1 AND date = $2 AND time = $3 AND status IN ('pending', 'accepted')
	)`
	var taken bool
	if err := database.Conn(ctx, r.db).GetContext(ctx, &taken, query, providerID, date, clock); err != nil {
		r.log.Error(ctx, "error check booking slot", err)
		return false, errors.InternalServerError("error check booking slot")
	}
	return taken, nil
}

// InsertBooking relies on the partial unique index over active slots; losing
// that race surfaces as SlotTaken.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	query := `INSERT INTO bookings (client_id, service_id, provider_id, date, time, total_price, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, client_id, service_id, provider_id, date, time, total_price, notes, status, created_at, updated_at`
	var out entity.Booking
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		booking.ClientID, booking.ServiceID, booking.ProviderID, booking.Date.Format("2006-01-02"),
		booking.Time, booking.TotalPrice, booking.Notes, booking.Status,
	).StructScan(&out)
	if err != nil {
		if constraint, ok := database.IsUniqueViolation(err); ok && constraint == activeSlotIndex {
			return entity.Booking{}, errors.SlotTaken("this slot is no longer available")
		}
		r.log.Error(ctx, "error insert booking", err)
		return entity.Booking{}, database.Translate(err, "booking not found", "error insert booking")
	}
	return out, nil
}

func (r *repositories) FindDetail(ctx context.Context, id int64) (entity.Detail, error) {
	var d entity.Detail
	if err := database.Conn(ctx, r.db).GetContext(ctx, &d, detailQuery+` WHERE b.id = $1`, id); err != nil {
		return entity.Detail{}, database.Translate(err, "booking not found", "error find booking")
	}
	return d, nil
}

// LockDetail takes the booking row lock for the rest of the transaction.
func (r *repositories) LockDetail(ctx context.Context, id int64) (entity.Detail, error) {
	var d entity.Detail
	if err := database.Conn(ctx, r.db).GetContext(ctx, &d, detailQuery+` WHERE b.id = $1 FOR UPDATE OF b`, id); err != nil {
		return entity.Detail{}, database.Translate(err, "booking not found", "error locking booking")
	}
	return d, nil
}

func (r *repositories) UpdateStatus(ctx context.Context, booking entity.Booking) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE bookings SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3`,
		booking.Status, booking.Notes, booking.ID)
	if err != nil {
		if constraint, ok := database.IsUniqueViolation(err); ok && constraint == activeSlotIndex {
			return errors.SlotTaken("this slot is no longer available")
		}
		r.log.Error(ctx, "error update booking status", err)
		return errors.InternalServerError("error update booking status")
	}
	return nil
}

func (r *repositories) FindByClient(ctx context.Context, clientID int64, status string) ([]entity.Detail, error) {
	query := detailQuery + ` WHERE b.client_id = $1 AND ($2 = '' OR b.status::text = $2)
		ORDER BY b.date DESC, b.time DESC`
	ds := []entity.Detail{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ds, query, clientID, status); err != nil {
		r.log.Error(ctx, "error find client bookings", err)
		return nil, errors.InternalServerError("error find client bookings")
	}
	return ds, nil
}

func (r *repositories) FindByProvider(ctx context.Context, providerID int64, status string) ([]entity.Detail, error) {
	query := detailQuery + ` WHERE b.provider_id = $1 AND ($2 = '' OR b.status::text = $2)
		ORDER BY b.date DESC, b.time DESC`
	ds := []entity.Detail{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ds, query, providerID, status); err != nil {
		r.log.Error(ctx, "error find provider bookings", err)
		return nil, errors.InternalServerError("error find provider bookings")
	}
	return ds, nil
}

const statsColumns = `COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
		COALESCE(SUM(CASE WHEN status = 'accepted' THEN 1 ELSE 0 END), 0) AS accepted,
		COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
		COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled,
		COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price ELSE 0 END), 0) AS total_earnings`

func (r *repositories) ClientStats(ctx context.Context, clientID int64) (entity.Stats, error) {
	var stats entity.Stats
	err := database.Conn(ctx, r.db).GetContext(ctx, &stats, `SELECT `+statsColumns+` FROM bookings WHERE client_id = $1`, clientID)
	if err != nil {
		r.log.Error(ctx, "error client booking stats", err)
		return entity.Stats{}, errors.InternalServerError("error client booking stats")
	}
	return stats, nil
}

func (r *repositories) ProviderStats(ctx context.Context, providerID int64) (entity.Stats, error) {
	var stats entity.Stats
	err := database.Conn(ctx, r.db).GetContext(ctx, &stats, `SELECT `+statsColumns+` FROM bookings WHERE provider_id = $1`, providerID)
	if err != nil {
		r.log.Error(ctx, "error provider booking stats", err)
		return entity.Stats{}, errors.InternalServerError("error provider booking stats")
	}
	return stats, nil
}
