package controllers

import (
	"errors"
	"net/http"

	"bookswap/app"
	"bookswap/db"
	logger "bookswap/loggers"
	"bookswap/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	repo *db.Repo
}

func GetUserController(repo *db.Repo) *UserController {
	return &UserController{repo: repo}
}

// POST /api/users
// 注册：邮箱全局唯一。不校验密码强度，也不做哈希（前端原样提交）。
func (uc *UserController) Signup(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Mobile   string `json:"mobile" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=Owner Seeker"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u := &models.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Mobile:   in.Mobile,
		Role:     in.Role,
	}
	if err := uc.repo.CreateUser(c.Request.Context(), u); err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, app.H{"error": "User already exists"})
			return
		}
		logger.Logger.WithError(err).Error("signup: create user failed")
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "user": u})
}

// POST /api/users/login
// 邮箱+密码精确匹配。返回完整 user（含密码字段），
// 前端把它整个存 localStorage 当会话用，服务端不发 token。
func (uc *UserController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := uc.repo.FindUserByCredentials(c.Request.Context(), in.Email, in.Password)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, app.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		logger.Logger.WithError(err).Error("login: lookup failed")
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true, "user": u})
}

// GET /api/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.repo.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
