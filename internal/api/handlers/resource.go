package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zoo_api/internal/models"
	"zoo_api/internal/service"
	"zoo_api/pkg/metrics"
)

// 回應訊息沿用既有 API 的文字，客戶端依賴這些字串
const (
	msgNotFound    = "Records not found"
	msgDuplicate   = "Another record with that value exists"
	msgStoreError  = "We ran into an error"
	msgInvalidID   = "Invalid id"
	msgInvalidBody = "Invalid request body"
)

// ResourceHandler 處理單一資源的 CRUD 請求
// T 是資料列，C 是建立請求，U 是更新請求
type ResourceHandler[T models.Entity, C models.CreateInput[T], U models.UpdateInput] struct {
	service *service.ResourceService[T]
	logger  *zap.Logger
	metrics *metrics.Manager
}

// NewResourceHandler 創建一個新的 ResourceHandler 實例，metrics 可以是 nil
func NewResourceHandler[T models.Entity, C models.CreateInput[T], U models.UpdateInput](
	svc *service.ResourceService[T], logger *zap.Logger, m *metrics.Manager,
) *ResourceHandler[T, C, U] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T, C, U]{
		service: svc,
		logger:  logger.With(zap.String("resource", svc.Name())),
		metrics: m,
	}
}

// Register 在路由群組上掛載 list、get、create、update、delete
func (h *ResourceHandler[T, C, U]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List 回傳所有資料列
func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get 依 id 回傳資料列，不存在時回應 404
func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Create 寫入新資料列並回應 201 與完整資料
func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var input C
	if err := bindStrictJSON(c, &input); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}

	row, err := h.service.Create(c.Request.Context(), input.Model())
	if err != nil {
		h.respondError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// Update 只修改請求中提供的欄位
func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var input U
	if err := bindStrictJSON(c, &input); err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}

	changes, err := input.Changes()
	if err != nil {
		badRequest(c, msgInvalidBody, err)
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, changes)
	if err != nil {
		h.respondError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete 永久刪除資料列，成功時回應 204
func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler[T, C, U]) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		if err == nil {
			err = errors.New("id must be a positive integer")
		}
		badRequest(c, msgInvalidID, err)
		return 0, false
	}
	return uint(id), true
}

// respondError 是所有失敗路徑唯一的出口，每個錯誤都會產生一個回應
func (h *ResourceHandler[T, C, U]) respondError(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordStoreError(h.service.Name(), op)
	}

	message := msgStoreError
	if errors.Is(err, service.ErrDuplicate) {
		message = msgDuplicate
		h.logger.Warn("duplicate value rejected", zap.String("operation", op), zap.Error(err))
	} else {
		h.logger.Error("store operation failed", zap.String("operation", op), zap.Error(err))
	}

	// 重複值沿用既有行為回應 500
	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message, "error": err.Error()})
}
