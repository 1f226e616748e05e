package utils

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identityKey = "identity"

func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the caller stored by the auth middleware.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// RespondError writes err using the status code of its kind. Internal
// errors are logged and never leak their cause to the client.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Kind == models.KindInternal {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		Fail(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	Fail(c, appErr.Kind.HTTPStatus(), appErr.Message, nil)
}

func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, models.NewValidationErrorf("invalid %s", name)
	}
	return id, nil
}

// ParseUUIDParam rejects malformed ids; a malformed cart id names no cart.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, models.NewNotFound(models.ErrMsgCartNotFound)
	}
	return id, nil
}
