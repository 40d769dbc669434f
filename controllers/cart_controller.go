// controllers/cart_controller.go
package controllers

import (
	"net/http"

	"bookswap/app"
	"bookswap/cart"

	"github.com/gin-gonic/gin"
)

// CartController 把原来前端 localStorage 里的购物车搬到了 Redis，
// 按 userId 分桶。没有会话机制，userId 直接走路径参数。
type CartController struct{ *Srv }

func NewCartController(s *Srv) *CartController { return &CartController{Srv: s} }

// GET /api/cart/:userId
func (cc *CartController) GetCart(c *gin.Context) {
	items, err := cc.Carts.Items(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

// POST /api/cart/:userId/items
// 重复加同一本书是 no-op，不报错
func (cc *CartController) AddItem(c *gin.Context) {
	var in cart.Item
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.ID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing book id"})
		return
	}
	userID := c.Param("userId")
	if _, err := cc.Carts.Add(c.Request.Context(), userID, in); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	items, err := cc.Carts.Items(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

// DELETE /api/cart/:userId/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	items, err := cc.Carts.Remove(c.Request.Context(), c.Param("userId"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}

// POST /api/cart/:userId/confirm
// “Confirm Rent”：只清空购物车，不做任何预订/库存写入
func (cc *CartController) ConfirmRent(c *gin.Context) {
	if err := cc.Carts.Clear(c.Request.Context(), c.Param("userId")); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
