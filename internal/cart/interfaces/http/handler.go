package http

import (
	"errors"
	"net/http"

	"github.com/wyfcoding/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/shopping/internal/cart/application"
	"github.com/wyfcoding/shopping/internal/cart/domain"
	"github.com/wyfcoding/pkg/logging"
)

// userIDHeader 调用方身份请求头，由上游网关注入
const userIDHeader = "X-User-ID"

// HTTP 处理器
// 负责处理与购物车相关的 HTTP 请求
type CartHandler struct {
	app *application.CartService // 购物车应用服务
}

// 创建 HTTP 处理器实例
// app: 注入的购物车应用服务
func NewCartHandler(app *application.CartService) *CartHandler {
	return &CartHandler{app: app}
}

// 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *CartHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/cart")
	{
		api.POST("", h.AddItem)
		api.GET("", h.GetCart)
		api.GET("/bill", h.GetBill)
		api.POST("/offer", h.ApplyOffer)
		api.POST("/checkout", h.Checkout)
	}
}

// AddItemRequest 添加商品请求体
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// ApplyOfferRequest 设置或清除条目优惠请求体
type ApplyOfferRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	OfferKey  *string `json:"offer_key"`
}

// AddItem 向用户的草稿购物车添加商品，重复添加覆盖数量
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "X-User-ID header is required", "")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	err := h.app.AddItem(c.Request.Context(), application.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.renderError(c, "Failed to add item", err)
		return
	}

	details, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, "Failed to load cart", err)
		return
	}

	response.Success(c, details)
}

// GetCart 返回用户的草稿购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "X-User-ID header is required", "")
		return
	}

	details, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, "Failed to load cart", err)
		return
	}

	response.Success(c, details)
}

// GetBill 计算并返回用户草稿购物车的账单
func (h *CartHandler) GetBill(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "X-User-ID header is required", "")
		return
	}

	details, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, "Failed to load cart", err)
		return
	}

	cart, err := h.app.CalculateBill(c.Request.Context(), details.Cart.ID)
	if err != nil {
		h.renderError(c, "Failed to calculate bill", err)
		return
	}

	response.Success(c, gin.H{
		"cart_id":  cart.ID,
		"subtotal": cart.Subtotal,
		"discount": cart.Discount,
		"total":    cart.Total,
	})
}

// ApplyOffer 对用户草稿购物车的条目设置或清除优惠，并刷新账单
func (h *CartHandler) ApplyOffer(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "X-User-ID header is required", "")
		return
	}

	var req ApplyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	details, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, "Failed to load cart", err)
		return
	}

	cart, err := h.app.ApplyOffer(c.Request.Context(), application.ApplyOfferCommand{
		CartID:    details.Cart.ID,
		ProductID: req.ProductID,
		OfferKey:  req.OfferKey,
	})
	if err != nil {
		h.renderError(c, "Failed to apply offer", err)
		return
	}

	response.Success(c, cart)
}

// Checkout 结账用户的草稿购物车
func (h *CartHandler) Checkout(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.ErrorWithStatus(c, http.StatusBadRequest, "X-User-ID header is required", "")
		return
	}

	details, err := h.app.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, "Failed to load cart", err)
		return
	}

	cart, err := h.app.Checkout(c.Request.Context(), details.Cart.ID)
	if err != nil {
		h.renderError(c, "Failed to checkout", err)
		return
	}

	response.Success(c, gin.H{
		"order_no": cart.OrderNo,
		"total":    cart.Total,
	})
}

// renderError 将领域错误映射为 HTTP 状态码
func (h *CartHandler) renderError(c *gin.Context, msg string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(c.Request.Context(), msg, "error", err)
	}
	response.ErrorWithStatus(c, status, err.Error(), "")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrLineItemNotFound),
		errors.Is(err, domain.ErrBillNotGenerated),
		errors.Is(err, domain.ErrCartAlreadyCompleted):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
