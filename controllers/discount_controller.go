package controllers

import (
	"errors"

	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiscountController struct{ Svc *services.DiscountService }

func NewDiscountController(s *services.DiscountService) *DiscountController {
	return &DiscountController{Svc: s}
}

// GET /admin/discounts
func (h *DiscountController) List(c *gin.Context) {
	out, err := h.Svc.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/discounts
func (h *DiscountController) Create(c *gin.Context) {
	var d entity.Discount
	if err := c.ShouldBindJSON(&d); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Create(&d, utils.CurrentUserID(c)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, d)
}

// PATCH /admin/discounts/:id
func (h *DiscountController) Update(c *gin.Context) {
	var d entity.Discount
	if err := c.ShouldBindJSON(&d); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(paramID(c, "id"), &d); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "discount not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, d)
}

// DELETE /admin/discounts/:id
func (h *DiscountController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
