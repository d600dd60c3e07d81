package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Bipul-Dubey/number-classifier/models"
	"github.com/Bipul-Dubey/number-classifier/services"
	"github.com/gin-gonic/gin"
)

type ClassifyHandler struct {
	classifyService services.ClassifyService
}

func NewClassifyHandler(classifyService services.ClassifyService) *ClassifyHandler {
	return &ClassifyHandler{
		classifyService: classifyService,
	}
}

// ClassifyNumber handles GET /api/classify-number?number=<int>
func (h *ClassifyHandler) ClassifyNumber(c *gin.Context) {
	raw := c.Query("number")
	if raw == "" {
		// c.Query drops pairs with malformed escapes; those are invalid, not missing.
		raw = rawQueryValue(c.Request.URL.RawQuery, "number")
	}
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Missing 'number' parameter",
		})
		return
	}

	number, err := parseNumber(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("Invalid input '%s'. Please provide an integer.", raw),
		})
		return
	}

	c.JSON(http.StatusOK, h.classifyService.Classify(c.Request.Context(), number))
}

// parseNumber accepts an optionally signed base-10 integer with surrounding
// whitespace.
func parseNumber(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// rawQueryValue returns the first value for key in rawQuery, unescaped when
// possible and verbatim otherwise.
func rawQueryValue(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if uk, err := url.QueryUnescape(k); err == nil {
			k = uk
		}
		if k != key {
			continue
		}
		if uv, err := url.QueryUnescape(v); err == nil {
			return uv
		}
		return v
	}
	return ""
}
