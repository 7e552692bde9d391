package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	"github.com/m04kA/barberbook/internal/infra/storage"
	"github.com/m04kA/barberbook/pkg/dbmetrics"
	"github.com/m04kA/barberbook/pkg/psqlbuilder"
	"github.com/m04kA/barberbook/pkg/types"
)

const table = "profiles"

var columns = []string{
	"id",
	"email",
	"password_hash",
	"role",
	"slug",
	"business_name",
	"open_time",
	"close_time",
	"break_start",
	"break_end",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий аккаунтов (таблица profiles)
// Расписание хранится в колонках профиля, NULL в slot_duration_minutes означает "не сохранено"
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает аккаунт
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "email", "password_hash", "role", "slug", "business_name").
		Values(account.ID, account.Email, account.PasswordHash, account.Role, account.Slug, account.BusinessName).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if storage.IsUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return account, nil
}

// GetByID получает аккаунт по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает аккаунт по email (без учета регистра)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

// GetBySlug получает аккаунт по публичному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Account, error) {
	return r.getOne(ctx, "GetBySlug", squirrel.Eq{"slug": slug})
}

// UpdateScheduleConfig сохраняет расписание аккаунта
func (r *Repository) UpdateScheduleConfig(ctx context.Context, id uuid.UUID, config domain.ScheduleConfig) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("open_time", config.Open).
		Set("close_time", config.Close).
		Set("break_start", config.BreakStart).
		Set("break_end", config.BreakEnd).
		Set("slot_duration_minutes", config.SlotDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateScheduleConfig - build update query: %v", ErrBuildQuery, err)
	}

	account, err := scanAccount(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateScheduleConfig - execute update: %v", ErrExecQuery, err)
	}

	return account, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	account, err := scanAccount(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan account: %v", ErrScanRow, op, err)
	}

	return account, nil
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	var slug sql.NullString
	var open, closeAt, breakStart, breakEnd types.TimeString
	var duration sql.NullInt32
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&slug,
		&account.BusinessName,
		&open,
		&closeAt,
		&breakStart,
		&breakEnd,
		&duration,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if slug.Valid {
		account.Slug = &slug.String
	}

	// Расписание считается сохраненным, если заданы длительность и часы работы
	if duration.Valid && !open.IsZero() && !closeAt.IsZero() {
		account.Config = &domain.ScheduleConfig{
			Open:                open,
			Close:               closeAt,
			BreakStart:          breakStart,
			BreakEnd:            breakEnd,
			SlotDurationMinutes: int(duration.Int32),
		}
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
