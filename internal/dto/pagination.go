package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPerPage = 10
	// 防止恶意的大分页查询
	MaxPerPage = 100
)

// ParsePagination 解析 page/per_page 查询参数并做上下限约束
func ParsePagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage)))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// TotalPages 计算总页数
func TotalPages(total int64, perPage int) int {
	if total == 0 || perPage < 1 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
