package handlers

import (
	"net/http"

	"lab_dashboard/internal/models"
	"lab_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditBilling() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}

	var req struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required"`
		Role        string `json:"role"`
		DisplayName string `json:"display_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		IsActive:    true,
	}
	if err := h.userService.CreateUser(user, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	if !scope.CanEditStages() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		return
	}

	users, err := h.userService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
