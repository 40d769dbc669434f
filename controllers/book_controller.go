// controllers/book_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"bookswap/app"
	"bookswap/db"
	logger "bookswap/loggers"
	"bookswap/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

type bookForm struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Genre    string  `json:"genre"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Location string  `json:"location"`
	Mode     string  `json:"mode"`
	Price    float64 `json:"price"`
	UserID   string  `json:"userId"`
}

// 挂牌表单校验，字段级错误信息原样给前端展示
func (in *bookForm) validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Author) == "" {
		errs["author"] = "Author is required"
	}
	if strings.TrimSpace(in.Genre) == "" {
		errs["genre"] = "Genre is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		errs["location"] = "Location is required"
	}
	if strings.TrimSpace(in.Email) == "" && strings.TrimSpace(in.Phone) == "" {
		errs["email"] = "Email or phone is required"
		errs["phone"] = "Email or phone is required"
	}
	if in.Mode != models.ModeRent && in.Mode != models.ModeExchange {
		errs["mode"] = "Mode must be Rent or Exchange"
	}
	if in.Mode == models.ModeRent && in.Price < 0 {
		errs["price"] = "Valid price is required for rent"
	}
	return errs
}

// POST /api/books
func (bc *BookController) CreateBook(c *gin.Context) {
	var in bookForm
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if errs := in.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, app.H{"errors": errs})
		return
	}

	price := in.Price
	if in.Mode == models.ModeExchange {
		// 交换书目不论提交什么都按 0 入库
		price = 0
	}
	b := &models.Book{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Author:   in.Author,
		Genre:    in.Genre,
		Email:    in.Email,
		Phone:    in.Phone,
		Location: in.Location,
		Mode:     in.Mode,
		Price:    price,
		UserID:   in.UserID,
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), b); err != nil {
		logger.Logger.WithError(err).Error("create book failed")
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to add book"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/books
// 返回全部书目，搜索/类型过滤都在前端做。
func (bc *BookController) ListBooks(c *gin.Context) {
	// TODO: 按 userId 过滤“我的书目”，等列表页把参数接上再启用
	_ = c.Query("userId")

	books, err := bc.Repo.ListBooks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// PUT /api/books/:id
// 部分更新：只覆盖出现在 body 里的字段
func (bc *BookController) UpdateBook(c *gin.Context) {
	id := c.Param("id")
	var in struct {
		Title    *string  `json:"title"`
		Author   *string  `json:"author"`
		Genre    *string  `json:"genre"`
		Email    *string  `json:"email"`
		Phone    *string  `json:"phone"`
		Location *string  `json:"location"`
		Mode     *string  `json:"mode"`
		Price    *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Author != nil {
		fields["author"] = *in.Author
	}
	if in.Genre != nil {
		fields["genre"] = *in.Genre
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Mode != nil {
		fields["mode"] = *in.Mode
		if *in.Mode == models.ModeExchange {
			fields["price"] = float64(0)
		}
	}
	// Exchange 恒为 0，改成 Exchange 时忽略提交的价格
	if in.Price != nil && (in.Mode == nil || *in.Mode != models.ModeExchange) {
		fields["price"] = *in.Price
	}

	b, err := bc.Repo.UpdateBook(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, db.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
			return
		}
		logger.Logger.WithError(err).Error("update book failed")
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to update book"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/books/:id
// 不校验请求者是否为所有者，前端只对 Owner 展示删除入口。
func (bc *BookController) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if err := bc.Repo.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
			return
		}
		logger.Logger.WithError(err).Error("delete book failed")
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to delete book"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Book deleted successfully"})
}
