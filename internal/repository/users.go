package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

const userColumns = `u.id, u.username, u.email, u.is_active, u.is_staff, u.is_superuser, u.ready_to_work, u.created_at,
	ARRAY(SELECT group_name FROM user_groups WHERE user_id = u.id ORDER BY group_name)`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var groups []string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.IsStaff, &u.IsSuperuser,
		&u.ReadyToWork, &u.CreatedAt, &groups)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		u.Groups = append(u.Groups, model.Group(g))
	}
	return &u, nil
}

// GetUserByID возвращает пользователя с членством в группах по идентификатору.
func (r *PostgresRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername возвращает пользователя по имени.
func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users u WHERE u.username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// ListUsersInGroup возвращает всех участников указанной группы.
func (r *PostgresRepository) ListUsersInGroup(ctx context.Context, group model.Group) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 JOIN user_groups ug ON ug.user_id = u.id AND ug.group_name = $1
		 ORDER BY u.username`,
		string(group),
	)
	if err != nil {
		return nil, fmt.Errorf("select group members: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}

// AddUserToGroup добавляет пользователя в группу.
// Повторное добавление идемпотентно и возвращает false.
func (r *PostgresRepository) AddUserToGroup(ctx context.Context, userID int64, group model.Group) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`INSERT INTO user_groups (user_id, group_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, string(group),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("insert group membership: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// RemoveUserFromGroup удаляет пользователя из группы.
func (r *PostgresRepository) RemoveUserFromGroup(ctx context.Context, userID int64, group model.Group) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM user_groups WHERE user_id = $1 AND group_name = $2`,
		userID, string(group),
	)
	if err != nil {
		return fmt.Errorf("delete group membership: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotInGroup
	}
	return nil
}

// SetReadyToWork устанавливает признак готовности курьера к работе.
func (r *PostgresRepository) SetReadyToWork(ctx context.Context, userID int64, ready bool) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE users SET ready_to_work = $2 WHERE id = $1`,
		userID, ready,
	)
	if err != nil {
		return fmt.Errorf("update ready_to_work: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
