package pairing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pairing-generator/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// user-entered subjects are clipped, matching the input form limit
	maxSubjectLength = 100

	// responses for the same subject stay valid as long as the cache TTL
	resultCacheControl = "public, max-age=86400"
)

// Recommender resolves pairing recommendations for a subject.
type Recommender interface {
	Recommend(ctx context.Context, subject string, direction common.Direction) ([]common.Recommendation, error)
}

// Handler serves the pairing recommendation endpoints.
type Handler struct {
	recommender Recommender
}

// NewHandler creates a pairing handler.
func NewHandler(recommender Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// HandleDrinkRecommendations handles GET /recommendations/drinks?food=…,
// returning 3 drinks for the given food.
func (h *Handler) HandleDrinkRecommendations(c *gin.Context) {
	h.handle(c, "food", common.FoodToDrink)
}

// HandleFoodRecommendations handles GET /recommendations/foods?drink=…,
// returning 3 foods for the given drink.
func (h *Handler) HandleFoodRecommendations(c *gin.Context) {
	h.handle(c, "drink", common.DrinkToFood)
}

func (h *Handler) handle(c *gin.Context, param string, direction common.Direction) {
	// behind the full router the requestid middleware has already stamped
	// an id; generate one only when the handler runs without it
	requestID := requestid.Get(c)
	if requestID == "" {
		requestID = c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
	}

	subject := strings.TrimSpace(c.Query(param))
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%s parameter is required", param),
			"code":  common.ErrCodeInvalidSubject,
		})
		return
	}
	subject = clipRunes(subject, maxSubjectLength)

	common.LogInfo("recommendation request received",
		zap.String("request_id", requestID),
		zap.String("direction", string(direction)),
		zap.String("subject", subject),
		zap.String("client_ip", c.ClientIP()),
	)

	items, err := h.recommender.Recommend(c.Request.Context(), subject, direction)
	if err != nil {
		h.writeError(c, requestID, subject, err)
		return
	}

	// same subject yields the same payload within the TTL window, so let
	// intermediaries cache it too
	c.Header("Cache-Control", resultCacheControl)
	c.Header("Vary", "Accept, Accept-Language")
	c.JSON(http.StatusOK, items)
}

func (h *Handler) writeError(c *gin.Context, requestID, subject string, err error) {
	// subject not a valid food/drink: the user goes back to the input
	// screen with the model's message
	if ve, ok := common.AsValidationError(err); ok {
		common.LogInfo("subject validation failed",
			zap.String("request_id", requestID),
			zap.String("subject", subject),
			zap.String("message", ve.Message),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": ve.Message,
			"code":  common.ErrCodeInvalidSubject,
		})
		return
	}

	var ce *common.CustomError
	if errors.As(err, &ce) {
		common.LogWarn("recommendation request failed",
			zap.String("request_id", requestID),
			zap.String("subject", subject),
			zap.String("error_code", ce.Code),
		)
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": common.ErrRequestTimeout.Message,
			"code":  common.ErrCodeRequestTimeout,
		})
		return
	}

	common.LogError("recommendation request failed",
		zap.String("request_id", requestID),
		zap.String("subject", subject),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": common.ErrInternalError.Message,
		"code":  common.ErrCodeInternalError,
	})
}

// clipRunes truncates s to at most n runes without splitting a glyph.
func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
