package routes

import (
	"bookswap/app"
	"bookswap/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	uc := controllers.GetUserController(s.Repo)
	bookCtl := controllers.NewBookController(s)
	cartCtl := controllers.NewCartController(s)

	// ------------------------------
	// 用户：注册 / 登录 / 列表
	// ------------------------------
	users := r.Group("/api/users")
	{
		users.POST("", uc.Signup)
		users.GET("", uc.ListUsers)
		users.POST("/login", uc.Login)
	}

	// ------------------------------
	// 书目 CRUD
	// ------------------------------
	books := r.Group("/api/books")
	{
		books.POST("", bookCtl.CreateBook)
		books.GET("", bookCtl.ListBooks) // ?userId= 目前忽略
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	// ------------------------------
	// 购物车（按用户分桶）
	// ------------------------------
	carts := r.Group("/api/cart")
	{
		carts.GET("/:userId", cartCtl.GetCart)
		carts.POST("/:userId/items", cartCtl.AddItem)
		carts.DELETE("/:userId/items/:id", cartCtl.RemoveItem)
		carts.POST("/:userId/confirm", cartCtl.ConfirmRent)
	}
}
