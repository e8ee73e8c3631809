package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	apperrors "member-events-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const invalidJSONMessage = "Invalid JSON payload"

func init() {
	// 驗證訊息使用 json 欄位名稱
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	}
}

// BindJson 解析 body，失敗時直接回 400
func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(verrs[0])})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"message": invalidJSONMessage})
		}
		return err
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// parseInt4 id 欄位皆為 INTEGER，超出 int32 範圍視為無效
func parseInt4(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	return int(n), err
}

// parseID 解析 :id，非正整數時回 400
func parseID(c *gin.Context) (int, bool) {
	id, err := parseInt4(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": apperrors.ErrInvalidID.Error()})
		return 0, false
	}
	return id, true
}

// queryInt 讀取整數查詢參數；未提供時 ok 為 false
func queryInt(c *gin.Context, key string) (value int, ok bool, err error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false, nil
	}
	value, err = parseInt4(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer: %w", key, apperrors.ErrInvalidInput)
	}
	return value, true, nil
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
