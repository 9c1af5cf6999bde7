package service

import (
	"context"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// ListGroupUsers возвращает участников группы.
func (s *Service) ListGroupUsers(ctx context.Context, group model.Group) ([]model.User, error) {
	if !model.KnownGroup(group) {
		return nil, ErrUnknownGroup
	}
	return s.repo.ListUsersInGroup(ctx, group)
}

// AddUserToGroup добавляет пользователя с указанным именем в группу.
// Повторное добавление идемпотентно.
func (s *Service) AddUserToGroup(ctx context.Context, username string, group model.Group) (*model.User, error) {
	if !model.KnownGroup(group) {
		return nil, ErrUnknownGroup
	}

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AddUserToGroup(ctx, u.ID, group); err != nil {
		return nil, err
	}

	return s.repo.GetUserByID(ctx, u.ID)
}

// RemoveUserFromGroup удаляет пользователя из группы.
func (s *Service) RemoveUserFromGroup(ctx context.Context, userID int64, group model.Group) error {
	if !model.KnownGroup(group) {
		return ErrUnknownGroup
	}
	return s.repo.RemoveUserFromGroup(ctx, userID, group)
}
