package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/infra/storage"
	"github.com/m04kA/barberbook/pkg/dbmetrics"
	"github.com/m04kA/barberbook/pkg/psqlbuilder"
	"github.com/m04kA/barberbook/pkg/types"
)

const table = "appointments"

// ON CONFLICT по частичному уникальному индексу appointments_active_slot_uq
const onActiveSlotConflict = "ON CONFLICT (business_id, appointment_date, appointment_time) WHERE status <> 'cancelled'"

var columns = []string{
	"id",
	"business_id",
	"appointment_date",
	"appointment_time",
	"client_name",
	"client_phone",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись
// Занятый слот (в том числе блокировкой) возвращает ErrSlotTaken: гонку двух клиентов
// разрешает уникальный индекс, первая вставка выигрывает
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"business_id",
			"appointment_date",
			"appointment_time",
			"client_name",
			"client_phone",
			"status",
			"notes",
		).
		Values(
			appointment.ID,
			appointment.BusinessID,
			appointment.AppointmentDate.Format(domain.DateFormat),
			appointment.AppointmentTime,
			appointment.ClientName,
			appointment.ClientPhone,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if storage.IsUniqueViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// CreateBlocks создает блокировки для набора слотов одним запросом
// Уже занятые слоты пропускаются (ON CONFLICT DO NOTHING), возвращается время реально созданных блокировок
func (r *Repository) CreateBlocks(
	ctx context.Context,
	businessID uuid.UUID,
	date time.Time,
	times []types.TimeString,
) ([]types.TimeString, error) {
	if len(times) == 0 {
		return []types.TimeString{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert(table).
		Columns("id", "business_id", "appointment_date", "appointment_time", "status")

	day := date.Format(domain.DateFormat)
	for _, t := range times {
		insert = insert.Values(uuid.New(), businessID, day, t, domain.StatusBlocked)
	}

	query, args, err := insert.
		Suffix(onActiveSlotConflict + " DO NOTHING RETURNING appointment_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlocks - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlocks - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimes(rows, "CreateBlocks")
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByIDs получает записи по списку ID, отсутствующие ID пропускаются
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Appointment, error) {
	if len(ids) == 0 {
		return []*domain.Appointment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("appointment_date", "appointment_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByFilter получает записи барбершопа на дату, упорядоченные по времени
func (r *Repository) ListByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"business_id":      filter.BusinessID,
			"appointment_date": filter.Date.Format(domain.DateFormat),
		}).
		OrderBy("appointment_time", "created_at")

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// OccupiedTimes возвращает время всех неотмененных записей барбершопа на дату
func (r *Repository) OccupiedTimes(ctx context.Context, businessID uuid.UUID, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appointment_time").
		From(table).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"appointment_date": date.Format(domain.DateFormat),
		}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("appointment_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimes(rows, "OccupiedTimes")
}

// Cancel переводит запись в статус cancelled, строка не удаляется
// Если businessID задан, отменяется только запись этого барбершопа
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, businessID *uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if businessID != nil {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"business_id": *businessID})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var notes sql.NullString
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.BusinessID,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.ClientName,
		&appointment.ClientPhone,
		&appointment.Status,
		&notes,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		appointment.Notes = &notes.String
	}
	if cancelledAt.Valid {
		appointment.CancelledAt = &cancelledAt.Time
	}
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func scanTimes(rows *sql.Rows, op string) ([]types.TimeString, error) {
	times := make([]types.TimeString, 0)

	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return times, nil
}
