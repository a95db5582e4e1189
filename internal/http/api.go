package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Casm101/leovegas-technical-test/internal/auth"
	"github.com/Casm101/leovegas-technical-test/internal/domain"
	"github.com/Casm101/leovegas-technical-test/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	tokens *auth.TokenService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api/v1")
	{
		api.POST("/auth", h.login)

		users := api.Group("/users")
		users.POST("", h.createUser)
		users.GET("", h.requireAuth(), h.listUsers)
		users.GET("/:id", h.requireAuth(), h.getUser)
		users.PATCH("/:id", h.requireAuth(), h.updateUser)
		users.DELETE("/:id", h.requireAuth(), h.deleteUser)
	}
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=256"`
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=256"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=256"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
}

type updateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=256"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		h.internalError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already in use.")
			return
		}
		h.internalError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) getUser(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorised")
		return
	}

	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found.")
			return
		}
		h.internalError(c, err)
		return
	}

	if err := auth.CanReadUser(claims, user.ID); err != nil {
		respondError(c, http.StatusForbidden, err.Error())
		return
	}

	respondData(c, http.StatusOK, userToResponse(user))
}

func (h *Handler) listUsers(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorised")
		return
	}

	if err := auth.CanListUsers(claims); err != nil {
		respondError(c, http.StatusForbidden, err.Error())
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	respondData(c, http.StatusOK, resp)
}

func (h *Handler) updateUser(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorised")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Existence before permission, uniformly: 404 for an absent target, 403
	// only for a target the caller may not touch.
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found.")
			return
		}
		h.internalError(c, err)
		return
	}

	if err := auth.CanUpdateUser(claims, user.ID); err != nil {
		respondError(c, http.StatusForbidden, err.Error())
		return
	}

	changes := domain.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		changes.Role = &role
	}

	updated, err := h.users.Update(c.Request.Context(), user.ID, changes)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "Email already in use.")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found.")
			return
		}
		h.internalError(c, err)
		return
	}

	respondData(c, http.StatusOK, userToResponse(updated))
}

func (h *Handler) deleteUser(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorised")
		return
	}

	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found.")
			return
		}
		h.internalError(c, err)
		return
	}

	if err := auth.CanDeleteUser(claims, user.ID); err != nil {
		respondError(c, http.StatusForbidden, err.Error())
		return
	}

	if err := h.users.Delete(c.Request.Context(), user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found.")
			return
		}
		h.internalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UserResponse is the client-facing projection of a user; credential fields
// never appear here.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"statusCode": status, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"statusCode": status, "message": message})
}

// internalError logs the cause and answers with a generic body; internals are
// not echoed to clients.
func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.WithError(err).Warnf("%s %s failed", c.Request.Method, c.FullPath())
	respondError(c, http.StatusInternalServerError, "Internal server error.")
}
