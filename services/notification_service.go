package services

import (
	"fmt"
	"log"

	"storefront/entity"
	"storefront/repository"
)

// Pusher delivers a notification to any live connections a user holds.
// Implemented by the websocket hub; nil means polling only.
type Pusher interface {
	Push(userID uint, n *entity.Notification)
}

type NotificationService struct {
	Repo   *repository.NotificationRepository
	pusher Pusher
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

// SetPusher wires the websocket hub after construction (the hub needs the
// service too, so one side attaches late).
func (s *NotificationService) SetPusher(p Pusher) {
	s.pusher = p
}

func (s *NotificationService) ListForUser(userID uint, limit int) ([]entity.Notification, int64, error) {
	items, err := s.Repo.ListForUser(userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.Repo.UnreadCount(userID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.Repo.MarkRead(userID, id)
}

var statusMessages = map[string]string{
	OrderPending:   "We received your order.",
	OrderPreparing: "Your order is being prepared.",
	OrderReady:     "Your order is ready for collection.",
	OrderCompleted: "Order completed. Enjoy!",
	OrderCancelled: "Your order was cancelled.",
}

// NotifyOrderStatus persists an order-status notification and pushes it to
// live connections. Failures are logged, never surfaced — notification
// delivery must not fail an order flow.
func (s *NotificationService) NotifyOrderStatus(userID, orderID uint, status string) {
	msg, ok := statusMessages[status]
	if !ok {
		msg = fmt.Sprintf("Order status changed to %s.", status)
	}

	n := &entity.Notification{
		UserID:  userID,
		Type:    "order_status",
		Title:   fmt.Sprintf("Order #%d", orderID),
		Body:    msg,
		OrderID: &orderID,
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("notification create failed: %v", err)
		return
	}
	if s.pusher != nil {
		s.pusher.Push(userID, n)
	}
}
