package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type StockController struct{ Svc *services.StockService }

func NewStockController(s *services.StockService) *StockController { return &StockController{Svc: s} }

// POST /admin/stock/adjust
func (h *StockController) Adjust(c *gin.Context) {
	var in services.AdjustStockIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	adj, err := h.Svc.Adjust(utils.CurrentUserID(c), &in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, adj)
}

// GET /admin/stock/adjustments?itemId=&limit=
func (h *StockController) ListAdjustments(c *gin.Context) {
	itemID, _ := strconv.ParseUint(c.Query("itemId"), 10, 32)
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.ListAdjustments(uint(itemID), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
