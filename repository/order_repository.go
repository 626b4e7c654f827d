package repository

import (
	"time"

	"storefront/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

type OrderSummary struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, status, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Selections").
		Find(&items).Error
	return items, err
}

// ---------------- admin ----------------

type AdminOrderSummary struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status string, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []AdminOrderSummary
	err := q.
		Select("orders.id, orders.user_id, users.first_name || ' ' || users.last_name AS customer_name, orders.status, orders.total, orders.created_at").
		Joins("LEFT JOIN users ON users.id = orders.user_id").
		Order("orders.id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error
}
