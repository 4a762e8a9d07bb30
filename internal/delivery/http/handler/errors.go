package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"car-selling-service/internal/logger"
	"car-selling-service/internal/middleware"
	appErrors "car-selling-service/pkg/errors"
	"car-selling-service/pkg/utils"
)

// respondWithError maps domain errors to the HTTP contract. Every response
// body is {"message": ...}; the wording below is part of the public API.
func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, appErrors.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, "User already exists")
	case errors.Is(err, appErrors.ErrMissingFields):
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, appErrors.ErrInvalidModel):
		utils.ErrorResponse(c, http.StatusBadRequest, "Model must be at least 3 characters")
	case errors.Is(err, appErrors.ErrInvalidPhone):
		utils.ErrorResponse(c, http.StatusBadRequest, "Phone number must be 11 digits")
	case errors.Is(err, appErrors.ErrInvalidCity):
		utils.ErrorResponse(c, http.StatusBadRequest, "City must be Lahore or Karachi")
	case errors.Is(err, appErrors.ErrTooManyImages):
		utils.ErrorResponse(c, http.StatusBadRequest, "A listing can have at most 10 images")
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case "VALIDATION_ERROR":
				utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
				return
			case "UPLOAD_ERROR":
				logUploadFailure(c, err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Error submitting car listing")
				return
			}
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

func logUploadFailure(c *gin.Context, err error) {
	logger.Error("Image host rejected upload",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}
