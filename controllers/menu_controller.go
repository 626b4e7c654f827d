package controllers

import (
	"errors"
	"strconv"

	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id)
}

// GET /menu
func (h *MenuController) GetMenu(c *gin.Context) {
	cats, err := h.Svc.GetMenu(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/items/:id
func (h *MenuController) GetItem(c *gin.Context) {
	item, err := h.Svc.GetItem(paramID(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// ---------------- admin catalog editor ----------------

// POST /admin/menu
func (h *MenuController) CreateItem(c *gin.Context) {
	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.CreateItem(c.Request.Context(), &item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (h *MenuController) UpdateItem(c *gin.Context) {
	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.ID = paramID(c, "id")
	if err := h.Svc.UpdateItem(c.Request.Context(), &item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (h *MenuController) DeleteItem(c *gin.Context) {
	if err := h.Svc.DeleteItem(c.Request.Context(), paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/menu/:id/groups
func (h *MenuController) CreateGroup(c *gin.Context) {
	var g entity.CustomizationGroup
	if err := c.ShouldBindJSON(&g); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g.MenuItemID = paramID(c, "id")
	if err := h.Svc.CreateGroup(c.Request.Context(), &g); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, g)
}

// PATCH /admin/groups/:id
func (h *MenuController) UpdateGroup(c *gin.Context) {
	var g entity.CustomizationGroup
	if err := c.ShouldBindJSON(&g); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g.ID = paramID(c, "id")
	if err := h.Svc.UpdateGroup(c.Request.Context(), &g); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, g)
}

// DELETE /admin/groups/:id
func (h *MenuController) DeleteGroup(c *gin.Context) {
	if err := h.Svc.DeleteGroup(c.Request.Context(), paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/groups/:id/options
func (h *MenuController) CreateOption(c *gin.Context) {
	var o entity.CustomizationOption
	if err := c.ShouldBindJSON(&o); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o.GroupID = paramID(c, "id")
	if err := h.Svc.CreateOption(c.Request.Context(), &o); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, o)
}

// PATCH /admin/options/:id
func (h *MenuController) UpdateOption(c *gin.Context) {
	var o entity.CustomizationOption
	if err := c.ShouldBindJSON(&o); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o.ID = paramID(c, "id")
	if err := h.Svc.UpdateOption(c.Request.Context(), &o); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /admin/options/:id
func (h *MenuController) DeleteOption(c *gin.Context) {
	if err := h.Svc.DeleteOption(c.Request.Context(), paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
