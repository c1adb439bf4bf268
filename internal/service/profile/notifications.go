package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/panacureo/panacureo-backend/internal/domain"
)

// ListNotifications returns the user's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.ListNotifications: %w", err)
	}
	return p.Notifications, nil
}

// UnreadCount returns how many notifications are unread.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("profile.UnreadCount: %w", err)
	}
	n := 0
	for _, notif := range p.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n, nil
}

// AddNotification prepends a new notification and returns it.
func (s *Service) AddNotification(ctx context.Context, userID uuid.UUID, input NotificationInput) (domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return domain.Notification{}, fmt.Errorf("profile.AddNotification: %w", err)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("profile.AddNotification: %w", err)
	}

	notif := domain.Notification{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Time:        input.Time,
		Type:        input.Type,
	}
	notifications := append([]domain.Notification{notif}, p.Notifications...)
	if err := s.profiles.SaveNotifications(ctx, userID, notifications); err != nil {
		return domain.Notification{}, fmt.Errorf("profile.AddNotification: %w", err)
	}
	return notif, nil
}

// MarkRead marks one notification as read. Unknown ids yield ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, userID uuid.UUID, notificationID string) error {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile.MarkRead: %w", err)
	}

	found := false
	for i, n := range p.Notifications {
		if n.ID == notificationID {
			p.Notifications[i].Read = true
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("profile.MarkRead: %q: %w", notificationID, domain.ErrNotFound)
	}

	if err := s.profiles.SaveNotifications(ctx, userID, p.Notifications); err != nil {
		return fmt.Errorf("profile.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification as read.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile.MarkAllRead: %w", err)
	}

	for i := range p.Notifications {
		p.Notifications[i].Read = true
	}

	if err := s.profiles.SaveNotifications(ctx, userID, p.Notifications); err != nil {
		return fmt.Errorf("profile.MarkAllRead: %w", err)
	}
	return nil
}

// ClearNotifications removes every notification.
func (s *Service) ClearNotifications(ctx context.Context, userID uuid.UUID) error {
	if err := s.profiles.SaveNotifications(ctx, userID, []domain.Notification{}); err != nil {
		return fmt.Errorf("profile.ClearNotifications: %w", err)
	}
	return nil
}
