// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrUserNotFound возвращается, если пользователь не найден.
var (
	ErrUserNotFound = errors.New("user not found")
	// ErrNotInGroup возвращается при удалении пользователя из группы, в которой он не состоит.
	ErrNotInGroup = errors.New("user is not a member of the group")
	// ErrCategoryNotFound возвращается, если категория не найдена.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryHasItems возвращается при попытке удалить категорию, на которую ссылаются блюда.
	ErrCategoryHasItems = errors.New("category still has menu items")
	// ErrMenuItemNotFound возвращается, если позиция меню не найдена.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrItemUnavailable возвращается при добавлении в корзину недоступного блюда.
	ErrItemUnavailable = errors.New("menu item is not available")
	// ErrEmptyCart возвращается при оформлении заказа с пустой корзиной.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoDeliveryAvailable возвращается, если нет ни одного готового к работе курьера.
	ErrNoDeliveryAvailable = errors.New("no delivery crew available")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNotAssigned возвращается, если заказ назначен другому курьеру.
	ErrNotAssigned = errors.New("order is assigned to another delivery crew")
	// ErrAlreadyDelivered возвращается при повторной отметке о доставке.
	ErrAlreadyDelivered = errors.New("order is already delivered")
	// ErrNotDeliveryCrew возвращается, если кандидат на доставку не состоит в группе delivery.
	ErrNotDeliveryCrew = errors.New("user is not a delivery crew member")
	// ErrCrewNotReady возвращается, если кандидат на доставку не готов к работе.
	ErrCrewNotReady = errors.New("delivery crew member is not ready to work")
	// ErrAlreadyRated возвращается при повторной оценке одной и той же сущности.
	ErrAlreadyRated = errors.New("already rated")
)

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delays := []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		// Если ошибка контекста — выходим сразу
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Ретраи полезны для Serialization Failure и Deadlocks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected {
				if i < len(delays) {
					time.Sleep(delays[i])
					continue
				}
			}
		}

		if isConnectionError(err) {
			if i < len(delays) {
				time.Sleep(delays[i])
				continue
			}
		}

		break
	}
	return err
}

func isConnectionError(err error) bool {
	// Упрощенная проверка на ошибки соединения
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "connection reset by peer")
}

// isUniqueViolation сообщает, что ошибка вызвана нарушением уникального ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isForeignKeyViolation сообщает, что ошибка вызвана нарушением внешнего ключа.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
