package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Register(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var in services.LoginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Login(&in)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	u, err := h.Svc.Me(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var in services.UpdateMeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Svc.UpdateMe(uid, &in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}
