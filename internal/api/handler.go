package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockprice/internal/domain/dto"
	"github.com/guttosm/stockprice/internal/domain/models"
	"github.com/guttosm/stockprice/internal/middleware"
	"github.com/guttosm/stockprice/internal/query"
	"github.com/guttosm/stockprice/internal/rapidapi"
	"github.com/guttosm/stockprice/internal/service"
)

// Handler provides HTTP handlers for the price query endpoints.
//
// Responsibilities:
//   - Parse query-string parameters into models.Params
//   - Delegate to the price service (one upstream fetch per request)
//   - Map service errors to HTTP status codes and dto.ErrorResponse bodies
type Handler struct {
	svc service.PriceService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.PriceService): Service running the query pipeline.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.PriceService) *Handler {
	return &Handler{svc: svc}
}

// GetPrice handles GET /api/v1/price requests.
//
// Responses:
//   - 200 OK: the single matching record.
//   - 400 Bad Request: invalid parameters, or zero / several records match.
//   - 502 Bad Gateway: the price API failed.
//
// GetPrice godoc
// @Summary      Get one stock price
// @Description  Returns the only record matching the filters; fails unless exactly one matches
// @Tags         prices
// @Produce      json
// @Param        identifier    query     string  false  "Identifier" example(TCSEQN)
// @Param        symbol        query     string  false  "Symbol" example(TCS)
// @Param        company_name  query     string  false  "Company name (meta)"
// @Param        industry      query     string  false  "Industry (meta)"
// @Param        isin          query     string  false  "ISIN (meta)"
// @Success      200           {object}  models.Record      "Success"
// @Failure      400           {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502           {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /api/v1/price [get]
func (h *Handler) GetPrice(c *gin.Context) {
	params, ok := bindParams(c)
	if !ok {
		return
	}

	rec, err := h.svc.Price(c.Request.Context(), params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetPrices handles GET /api/v1/prices requests.
//
// Query Parameters:
//   - identifier, symbol, company_name, industry, isin (optional): exact-match filters.
//   - sort (optional): "<field>.<asc|desc>", e.g. "lastPrice.desc".
//   - page, limit (optional): pagination, default 1 and 10.
//
// GetPrices godoc
// @Summary      List stock prices
// @Description  Filters, optionally sorts, and paginates the price listing
// @Tags         prices
// @Produce      json
// @Param        identifier    query     string  false  "Identifier"
// @Param        symbol        query     string  false  "Symbol"
// @Param        company_name  query     string  false  "Company name (meta)"
// @Param        industry      query     string  false  "Industry (meta)" example(COMPUTERS - SOFTWARE)
// @Param        isin          query     string  false  "ISIN (meta)"
// @Param        sort          query     string  false  "Sort spec" example(lastPrice.desc)
// @Param        page          query     int     false  "Page (1-based)" default(1)
// @Param        limit         query     int     false  "Page size" default(10)
// @Success      200           {object}  dto.PricesResponse  "Success"
// @Failure      400           {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502           {object}  dto.ErrorResponse   "Upstream Error"
// @Router       /api/v1/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	params, ok := bindParams(c)
	if !ok {
		return
	}

	records, err := h.svc.Prices(c.Request.Context(), params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PricesResponse{
		Data:  records,
		Page:  params.PageOrDefault(),
		Limit: params.LimitOrDefault(),
		Count: len(records),
	})
}

// GetAllPrices handles GET /api/v1/prices/all requests.
// Only sort is honoured; filters and pagination are ignored.
//
// GetAllPrices godoc
// @Summary      Full price listing
// @Description  Returns every record, sorted when sort is given; never filtered or paginated
// @Tags         prices
// @Produce      json
// @Param        sort  query     string  false  "Sort spec" example(symbol.asc)
// @Success      200   {object}  dto.PriceListResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502   {object}  dto.ErrorResponse      "Upstream Error"
// @Router       /api/v1/prices/all [get]
func (h *Handler) GetAllPrices(c *gin.Context) {
	params, ok := bindParams(c)
	if !ok {
		return
	}

	records, err := h.svc.PriceAll(c.Request.Context(), params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PriceListResponse{Data: records, Count: len(records)})
}

// bindParams parses the query string; on failure it has already responded 400.
func bindParams(c *gin.Context) (models.Params, bool) {
	params, err := query.ParseParams(c.Query)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return models.Params{}, false
	}
	return params, true
}

// abortWithServiceError maps pipeline and transport errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	var fetchErr *rapidapi.FetchError

	switch {
	case errors.Is(err, service.ErrBadRequest):
		middleware.AbortWithError(c, http.StatusBadRequest, "bad request", err)
	case errors.Is(err, query.ErrMalformedSortSpec), errors.Is(err, query.ErrInvalidSortValue):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sort", err)
	case errors.As(err, &fetchErr):
		middleware.AbortWithError(c, http.StatusBadGateway, "failed to fetch prices", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to query prices", err)
	}
}
