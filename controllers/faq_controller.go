package controllers

import (
	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type FAQController struct{ Svc *services.FAQService }

func NewFAQController(s *services.FAQService) *FAQController { return &FAQController{Svc: s} }

// GET /faqs?q=
func (h *FAQController) Search(c *gin.Context) {
	out, err := h.Svc.Search(c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/faqs
func (h *FAQController) Create(c *gin.Context) {
	var f entity.FAQ
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Create(&f); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, f)
}

// PATCH /admin/faqs/:id
func (h *FAQController) Update(c *gin.Context) {
	var f entity.FAQ
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f.ID = paramID(c, "id")
	if err := h.Svc.Update(&f); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, f)
}

// DELETE /admin/faqs/:id
func (h *FAQController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
