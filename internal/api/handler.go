package api

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/usdtpulse/internal/domain/dto"
	"github.com/guttosm/usdtpulse/internal/logger"
	"github.com/guttosm/usdtpulse/internal/middleware"
	"github.com/guttosm/usdtpulse/internal/service"
)

const invalidInputPrefix = "Invalid input or missing data: "

// Handler provides the HTTP handlers for the screener and calculator endpoints.
//
// Responsibilities:
//   - Decode and validate request input
//   - Delegate to the service layer
//   - Map service errors to HTTP status codes (upstream -> 500, validation -> 400)
type Handler struct {
	snapshot service.SnapshotService
	calc     service.CalculatorService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - snapshot (service.SnapshotService): ranks pairs from the exchange feed.
//   - calc (service.CalculatorService): derives stop-loss/take-profit plans.
func NewHandler(snapshot service.SnapshotService, calc service.CalculatorService) *Handler {
	useJSONFieldNames()
	return &Handler{snapshot: snapshot, calc: calc}
}

// GetData handles GET /data.
//
// Responses:
//   - 200 OK: up to 20 USDT pairs ordered by 24h quote volume, highest first.
//   - 500 Internal Server Error: exchange unreachable or returned unusable data.
//
// GetData godoc
// @Summary      Top USDT pairs by volume
// @Description  Fetches 24h tickers, keeps USDT pairs with a non-zero price, derives spread and volatility and returns the top 20 by quote volume
// @Tags         market
// @Produce      json
// @Success      200  {array}   dto.PairResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse "Upstream failure"
// @Router       /data [get]
func (h *Handler) GetData(c *gin.Context) {
	pairs, err := h.snapshot.TopPairs(c.Request.Context())
	if err != nil {
		lg := logger.With("api")
		lg.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Err(err).
			Msg("error fetching data")
		middleware.AbortWithError(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewPairResponses(pairs))
}

// Calculate handles POST /calculate.
//
// Responses:
//   - 200 OK: stop-loss, take-profit, risk, reward and stop distance rounded to 5 decimals.
//   - 400 Bad Request: missing field, non-numeric value, or zero size/leverage.
//
// Calculate godoc
// @Summary      Position sizing calculator
// @Description  Computes stop-loss and take-profit at a fixed 2:1 reward-to-risk ratio
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculateRequest   true  "Trade inputs"
// @Success      200   {object}  dto.CalculateResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Router       /calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, invalidInputPrefix+describeBindError(err), nil)
		return
	}

	out, err := h.calc.Calculate(req.Inputs())
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			middleware.AbortWithError(c, http.StatusBadRequest, invalidInputPrefix+ve.Error(), nil)
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCalculateResponse(out))
}

// describeBindError turns binding failures into one readable sentence.
func describeBindError(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is empty"
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				msgs = append(msgs, fe.Field()+" is required")
				continue
			}
			msgs = append(msgs, fe.Field()+" failed "+fe.Tag())
		}
		return strings.Join(msgs, ", ")
	}
	return err.Error()
}

var jsonNamesOnce sync.Once

// useJSONFieldNames makes validation errors report json keys (entry_price)
// instead of Go field names (EntryPrice).
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
}
