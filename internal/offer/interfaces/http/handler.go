package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wyfcoding/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/shopping/internal/offer/application"
	"github.com/wyfcoding/shopping/internal/offer/domain"
	"github.com/wyfcoding/pkg/logging"
)

// HTTP 处理器
// 负责处理与促销优惠相关的 HTTP 请求
type OfferHandler struct {
	app *application.OfferService // 促销优惠应用服务
}

// 创建 HTTP 处理器实例
// app: 注入的促销优惠应用服务
func NewOfferHandler(app *application.OfferService) *OfferHandler {
	return &OfferHandler{app: app}
}

// 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *OfferHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/offers")
	{
		api.POST("", h.CreateOffer)
		api.GET("", h.ListOffers)
		api.GET("/:id", h.GetOffer)
	}
}

// CreateOfferRequest 创建优惠请求体
type CreateOfferRequest struct {
	Key       string `json:"key" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
}

// CreateOffer 创建优惠
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	id, err := h.app.CreateOffer(c.Request.Context(), application.CreateOfferCommand{
		Key:       req.Key,
		ProductID: req.ProductID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownOfferKey):
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, domain.ErrProductNotFound):
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, domain.ErrOfferExists):
			response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
		default:
			logging.Error(c.Request.Context(), "Failed to create offer", "key", req.Key, "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		}
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetOffer 获取优惠
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid offer id", "")
		return
	}

	offer, err := h.app.GetOffer(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
			return
		}
		logging.Error(c.Request.Context(), "Failed to get offer", "id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	response.Success(c, offer)
}

// ListOffers 列出商品上的优惠
func (h *OfferHandler) ListOffers(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "product_id is required", "")
		return
	}

	offers, err := h.app.ListByProduct(c.Request.Context(), uint(productID))
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to list offers", "product_id", productID, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	response.Success(c, offers)
}
