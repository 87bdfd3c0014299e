package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody là cấu trúc response lỗi chung của hệ thống
type ErrorBody struct {
	Error  string      `json:"error"`
	Fields interface{} `json:"fields,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithMessage trả về resource kèm message
func SuccessWithMessage(c *gin.Context, key string, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{
		key:       data,
		"message": message,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, key string, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, gin.H{
		key: data,
		"pagination": Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Lỗi server"})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: "Chưa xác thực"})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: "Không có quyền truy cập"})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: "Không tìm thấy"})
}

// NotFoundWithMessage trả về 404 kèm thông điệp cụ thể
func NotFoundWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: message})
}

// ValidationError trả về lỗi validation kèm chi tiết theo field
func ValidationError(c *gin.Context, message string, fields interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Fields: fields})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, ErrorBody{Error: "Xung đột dữ liệu"})
}
