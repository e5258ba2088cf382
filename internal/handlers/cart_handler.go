package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/cart"
	"pubhouse-be/internal/checkout"
	"pubhouse-be/internal/middleware"
)

type CartHandler struct {
	carts     cart.Service
	checkouts checkout.Service
}

func NewCartHandler(carts cart.Service, checkouts checkout.Service) *CartHandler {
	return &CartHandler{carts: carts, checkouts: checkouts}
}

// GetCart returns the cart view plus a pricing quote for the requested
// delivery method (defaults to delivery).
func (h *CartHandler) GetCart(c *gin.Context) {
	sid := middleware.SessionID(c)

	view, err := h.carts.View(c.Request.Context(), sid)
	if err != nil {
		respondError(c, err)
		return
	}
	quote, err := h.checkouts.Quote(c.Request.Context(), sid, c.Query("delivery_method"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": view, "quote": quote})
}

func (h *CartHandler) GetCount(c *gin.Context) {
	count, err := h.carts.Count(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		Category     string `json:"category" binding:"required"`
		Subsection   string `json:"subsection"`
		ItemIndex    int    `json:"item_idx"`
		VariantIndex *int   `json:"variant_idx"`
		Qty          int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	variantIdx := -1
	if req.VariantIndex != nil {
		variantIdx = *req.VariantIndex
	}

	view, err := h.carts.Add(c.Request.Context(), middleware.SessionID(c), cart.AddParams{
		Category:     req.Category,
		Subsection:   req.Subsection,
		ItemIndex:    req.ItemIndex,
		VariantIndex: variantIdx,
		Qty:          req.Qty,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req struct {
		Index  int    `json:"i"`
		Qty    int    `json:"qty"`
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	view, err := h.carts.UpdateQty(c.Request.Context(), middleware.SessionID(c), cart.UpdateParams{
		Index:  req.Index,
		Qty:    req.Qty,
		Action: req.Action,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req struct {
		Index int `json:"i"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	view, err := h.carts.Remove(c.Request.Context(), middleware.SessionID(c), req.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.carts.Clear(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	view, err := h.carts.ApplyPromo(c.Request.Context(), middleware.SessionID(c), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) ClearPromo(c *gin.Context) {
	view, err := h.carts.ClearPromo(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitOrder finalizes the cart into a persisted order.
func (h *CartHandler) SubmitOrder(c *gin.Context) {
	var in checkout.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	in.IP = c.ClientIP()
	in.UserAgent = c.Request.UserAgent()

	rec, err := h.checkouts.Submit(c.Request.Context(), middleware.SessionID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": rec.ID,
		"total":    rec.Total,
		"status":   "accepted",
	})
}
