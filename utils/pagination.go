package utils

import (
	"fmt"
	"strconv"

	"TaskHubGo/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageParams 解析分页查询参数
func PageParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// NewPage 构造分页响应，next/previous为相邻页的绝对地址
func NewPage(c *gin.Context, page, pageSize int, count int64, results interface{}) models.PageResponse {
	resp := models.PageResponse{
		Count:   count,
		Results: results,
	}
	if int64(page*pageSize) < count {
		next := pageURL(c, page+1)
		resp.Next = &next
	}
	if page > 1 {
		previous := pageURL(c, page-1)
		resp.Previous = &previous
	}
	return resp
}

func pageURL(c *gin.Context, page int) string {
	query := c.Request.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	url := fmt.Sprintf("%s://%s%s", RequestScheme(c), c.Request.Host, c.Request.URL.Path)
	if encoded := query.Encode(); encoded != "" {
		url += "?" + encoded
	}
	return url
}

// RequestScheme 根据请求推断协议
func RequestScheme(c *gin.Context) string {
	if c.Request.TLS != nil {
		return "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	return "http"
}
