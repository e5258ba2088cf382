package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/booking"
	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/site"
)

type PublicHandler struct {
	menus    menu.Service
	site     site.Repository
	bookings booking.Service
}

func NewPublicHandler(menus menu.Service, siteRepo site.Repository, bookings booking.Service) *PublicHandler {
	return &PublicHandler{menus: menus, site: siteRepo, bookings: bookings}
}

func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *PublicHandler) GetMenu(c *gin.Context) {
	m, err := h.menus.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetSite exposes the site settings without notification credentials.
func (h *PublicHandler) GetSite(c *gin.Context) {
	s, err := h.site.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.Public())
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var b booking.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	b.IP = c.ClientIP()
	b.UserAgent = c.Request.UserAgent()

	if err := h.bookings.Create(c.Request.Context(), b); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}
