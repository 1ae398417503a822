package handler

import (
	"net/http"

	"boral/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const bannerMessage = "Boral API - منصة بورال"

// Root returns the service banner
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": bannerMessage})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
