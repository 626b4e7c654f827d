package controllers

import (
	"errors"

	"storefront/pkg/resp"
	"storefront/pricing"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// writeCartError maps the pricing taxonomy onto HTTP statuses. Validation
// failures are client-recoverable 400s; stock and price conflicts are 409s
// so the UI can message them differently.
func writeCartError(c *gin.Context, err error) {
	var (
		ve  pricing.ValidationError
		se  pricing.StockError
		ise pricing.IncompleteSelectionError
		iq  pricing.InvalidQuantityError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &ise), errors.As(err, &iq):
		resp.BadRequest(c, err.Error())
	case errors.As(err, &se), errors.Is(err, services.ErrPriceMismatch):
		resp.Conflict(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.BadRequest(c, err.Error())
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	cart, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &in); err != nil {
		writeCartError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// POST /cart/builder-items
func (h *CartController) AddBuilder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var in services.AddBuilderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddBuilder(uid, &in); err != nil {
		writeCartError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(uid, body.ItemID, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(uid, body.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
