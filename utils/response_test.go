package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantLogged  bool
	}{
		{"validation", models.NewValidationError(models.ErrMsgCartEmpty), http.StatusBadRequest, models.ErrMsgCartEmpty, false},
		{"not found", models.NewNotFound(models.ErrMsgCartNotFound), http.StatusNotFound, models.ErrMsgCartNotFound, false},
		{"not allowed", models.NewNotAllowed(models.ErrMsgProductInOrder), http.StatusMethodNotAllowed, models.ErrMsgProductInOrder, false},
		{"conflict", models.NewConflict(models.ErrMsgCheckedOut, nil), http.StatusConflict, models.ErrMsgCheckedOut, false},
		{"internal", models.NewInternal("failed to load cart", errors.New("dial tcp: refused")), http.StatusInternalServerError, "internal server error", true},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal server error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/carts/x", nil)

			RespondError(c, zap.New(core), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotContains(t, w.Body.String(), "dial tcp")
			assert.Equal(t, tt.wantLogged, logs.Len() == 1)
		})
	}
}

func TestParseParams(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "abc"}, {Key: "item_id", Value: "12"}}

	_, err := ParseUUIDParam(c, "id")
	assert.True(t, models.IsKind(err, models.KindNotFound))

	id, err := ParseIDParam(c, "item_id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = ParseIDParam(c, "id")
	assert.True(t, models.IsKind(err, models.KindValidation))
}
