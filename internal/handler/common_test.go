package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"member-events-api/config"

	"github.com/gin-gonic/gin"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// setupTestRouter 以正式的 router 組裝受測 handler
func setupTestRouter(registrars ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(&config.ServerConfig{AllowedOrigins: []string{"*"}}, registrars...)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	var body []byte
	switch v := data.(type) {
	case string:
		body = []byte(v)
	default:
		body, _ = json.Marshal(data)
	}
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
