package services

import (
	"errors"
	"time"

	"storefront/entity"
	"storefront/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses, walked forward only.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	DiscountRepo *repository.DiscountRepository
	StockRepo    *repository.StockRepository
	Notifier     *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	discountRepo *repository.DiscountRepository,
	stockRepo *repository.StockRepository,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		DiscountRepo: discountRepo, StockRepo: stockRepo, Notifier: notifier,
	}
}

type CheckoutIn struct {
	DiscountCode string `json:"discountCode"`
	Note         string `json:"note"`
}

type CheckoutOut struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Subtotal  int64  `json:"subtotal"`
	Discount  int64  `json:"discount"`
	Total     int64  `json:"total"`
}

// CheckoutFromCart snapshots the cart into an order. Prices come from the
// cart's denormalized snapshots — the server recomputes nothing from the live
// catalog here, so mid-session catalog edits never shift a placed total.
func (s *OrderService) CheckoutFromCart(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.LineTotal
	}

	discount, err := s.resolveDiscount(in.DiscountCode, subtotal)
	if err != nil {
		return nil, err
	}
	total := subtotal - discount

	var out CheckoutOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:    userID,
			Reference: uuid.NewString(),
			Status:    OrderPending,
			Subtotal:  subtotal,
			Discount:  discount,
			Total:     total,
			Note:      in.Note,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:       order.ID,
				MenuItemID:    it.MenuItemID,
				ItemName:      it.ItemName,
				Qty:           it.Qty,
				UnitPrice:     it.UnitPrice,
				LineTotal:     it.LineTotal,
				IsBuilderItem: it.IsBuilderItem,
			}
			for _, sel := range it.Selections {
				oi.Selections = append(oi.Selections, entity.OrderItemSelection{
					GroupName:  sel.GroupName,
					OptionName: sel.OptionName,
					PriceDelta: sel.PriceDelta,
				})
			}
			for _, p := range it.BuilderPicks {
				oi.Selections = append(oi.Selections, entity.OrderItemSelection{
					GroupName:  p.StepKey,
					OptionName: p.ItemName,
					PriceDelta: p.Price,
				})
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			if !it.IsBuilderItem {
				if err := s.StockRepo.Decrement(tx, it.MenuItemID, it.Qty); err != nil {
					return err
				}
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = CheckoutOut{
			ID: order.ID, Reference: order.Reference,
			Subtotal: subtotal, Discount: discount, Total: total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.NotifyOrderStatus(userID, out.ID, OrderPending)
	return &out, nil
}

func (s *OrderService) resolveDiscount(code string, subtotal int64) (int64, error) {
	if code == "" {
		return 0, nil
	}
	d, err := s.DiscountRepo.FindActiveByCode(code, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("invalid discount code")
		}
		return 0, err
	}
	if subtotal < d.MinSubtotal {
		return 0, errors.New("order below discount minimum")
	}

	var off int64
	switch d.Kind {
	case "percent":
		off = subtotal * int64(d.PercentOff) / 100
	default:
		off = d.AmountOff
	}
	if off > subtotal {
		off = subtotal
	}
	return off, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID        uint               `json:"id"`
	Reference string             `json:"reference"`
	Status    string             `json:"status"`
	Subtotal  int64              `json:"subtotal"`
	Discount  int64              `json:"discount"`
	Total     int64              `json:"total"`
	Items     []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Reference: o.Reference, Status: o.Status,
		Subtotal: o.Subtotal, Discount: o.Discount, Total: o.Total,
		Items: items,
	}, nil
}

// ---------------- admin ----------------

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(status string, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(status, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

var validTransitions = map[string][]string{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted},
}

func (s *OrderService) UpdateStatus(orderID uint, next string) error {
	var o entity.Order
	if err := s.DB.First(&o, orderID).Error; err != nil {
		return err
	}

	allowed := false
	for _, t := range validTransitions[o.Status] {
		if t == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return errors.New("invalid status transition")
	}

	if err := s.Repo.UpdateStatus(orderID, next); err != nil {
		return err
	}
	s.Notifier.NotifyOrderStatus(o.UserID, o.ID, next)
	return nil
}
