package controllers

import (
	"errors"
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct{ Svc *services.CustomerService }

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: s}
}

// GET /admin/customers?search=&page=&limit=
func (h *CustomerController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.Svc.List(c.Query("search"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/customers/:id
func (h *CustomerController) Profile(c *gin.Context) {
	out, err := h.Svc.Profile(paramID(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "customer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
