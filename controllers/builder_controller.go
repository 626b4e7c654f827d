package controllers

import (
	"storefront/entity"
	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type BuilderController struct{ Svc *services.BuilderService }

func NewBuilderController(s *services.BuilderService) *BuilderController {
	return &BuilderController{Svc: s}
}

// GET /builder/config
func (h *BuilderController) GetConfig(c *gin.Context) {
	out, err := h.Svc.GetConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /builder/steps
func (h *BuilderController) GetSteps(c *gin.Context) {
	steps, err := h.Svc.GetSteps()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, steps)
}

// ---------------- admin ----------------

// PATCH /admin/builder/config
func (h *BuilderController) SaveSetting(c *gin.Context) {
	var in services.BuilderSettingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SaveSetting(&in); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": true})
}

// POST /admin/builder/steps
func (h *BuilderController) CreateStep(c *gin.Context) {
	var st entity.BuilderStep
	if err := c.ShouldBindJSON(&st); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.CreateStep(&st); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, st)
}

// PATCH /admin/builder/steps/:id
func (h *BuilderController) UpdateStep(c *gin.Context) {
	var st entity.BuilderStep
	if err := c.ShouldBindJSON(&st); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	st.ID = paramID(c, "id")
	if err := h.Svc.UpdateStep(&st); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, st)
}

// DELETE /admin/builder/steps/:id
func (h *BuilderController) DeleteStep(c *gin.Context) {
	if err := h.Svc.DeleteStep(paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/builder/steps/:id/items
func (h *BuilderController) CreateStepItem(c *gin.Context) {
	var it entity.BuilderStepItem
	if err := c.ShouldBindJSON(&it); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it.StepID = paramID(c, "id")
	if err := h.Svc.CreateStepItem(&it); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, it)
}

// PATCH /admin/builder/items/:id
func (h *BuilderController) UpdateStepItem(c *gin.Context) {
	var it entity.BuilderStepItem
	if err := c.ShouldBindJSON(&it); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it.ID = paramID(c, "id")
	if err := h.Svc.UpdateStepItem(&it); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, it)
}

// DELETE /admin/builder/items/:id
func (h *BuilderController) DeleteStepItem(c *gin.Context) {
	if err := h.Svc.DeleteStepItem(paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
