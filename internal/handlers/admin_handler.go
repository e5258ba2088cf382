package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/auth"
	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/middleware"
	"pubhouse-be/internal/promo"
	"pubhouse-be/internal/site"
)

type AdminHandler struct {
	auth   auth.Service
	site   site.Repository
	menus  menu.Service
	promos promo.Service
}

func NewAdminHandler(authSvc auth.Service, siteRepo site.Repository, menus menu.Service, promos promo.Service) *AdminHandler {
	return &AdminHandler{auth: authSvc, site: siteRepo, menus: menus, promos: promos}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, 8*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req struct {
		Current  string `json:"current" binding:"required"`
		New      string `json:"new" binding:"required"`
		Confirm  string `json:"confirm" binding:"required"`
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if req.Username == "" {
		req.Username = middleware.AdminUser(c)
	}
	if err := h.auth.ChangePassword(c.Request.Context(), req.Current, req.New, req.Confirm, req.Username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	s, err := h.site.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var s site.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings document"})
		return
	}
	if err := h.site.Save(c.Request.Context(), s); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *AdminHandler) GetMenu(c *gin.Context) {
	m, err := h.menus.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ReplaceMenu swaps the whole menu document, the admin JSON-editor flow.
func (h *AdminHandler) ReplaceMenu(c *gin.Context) {
	var m menu.Menu
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu document"})
		return
	}
	if err := h.menus.Replace(c.Request.Context(), m); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *AdminHandler) ListPromos(c *gin.Context) {
	codes, err := h.promos.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if codes == nil {
		codes = []promo.Code{}
	}
	c.JSON(http.StatusOK, codes)
}

func (h *AdminHandler) UpsertPromo(c *gin.Context) {
	var code promo.Code
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid promo document"})
		return
	}
	if err := h.promos.Upsert(c.Request.Context(), code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *AdminHandler) DeletePromo(c *gin.Context) {
	if err := h.promos.Delete(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ResetPromoUsage zeroes a code's usage counter, the only decrement path.
func (h *AdminHandler) ResetPromoUsage(c *gin.Context) {
	if err := h.promos.ResetUsage(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
