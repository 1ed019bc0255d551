package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nsepulse/nsepulse/internal/domain/dto"
	"github.com/nsepulse/nsepulse/internal/domain/models"
	"github.com/nsepulse/nsepulse/internal/export"
	"github.com/nsepulse/nsepulse/internal/ingestion"
	"github.com/nsepulse/nsepulse/internal/screener"
	"github.com/nsepulse/nsepulse/internal/service"
	"github.com/nsepulse/nsepulse/internal/storage"
)

// Handler provides HTTP handlers for the accumulation screen.
//
// Responsibilities:
//   - Validate threshold query parameters
//   - Run the scan through the service layer
//   - Translate pipeline errors into HTTP status codes
//   - Render the projected JSON view or the full-fidelity CSV export
type Handler struct {
	svc  service.ScanService
	runs storage.ScanRunRepository // nil when the scan log is disabled
}

// NewHandler constructs a Handler. runs may be nil; the /runs endpoint then
// reports the scan log as disabled.
func NewHandler(svc service.ScanService, runs storage.ScanRunRepository) *Handler {
	return &Handler{svc: svc, runs: runs}
}

// scanParams reads the three optional threshold query parameters, applying
// the documented default for each absent one. A non-integer value is a
// client error; range validation happens in the pipeline constructor.
func scanParams(c *gin.Context) (models.Params, error) {
	p := models.DefaultParams()

	read := func(name string, dst *int) error {
		s := c.Query(name)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", name, s)
		}
		*dst = v
		return nil
	}

	if err := read("min_volume", &p.MinVolumeLakhs); err != nil {
		return p, err
	}
	if err := read("max_distance", &p.MaxDistancePct); err != nil {
		return p, err
	}
	if err := read("min_trades", &p.MinTrades); err != nil {
		return p, err
	}
	return p, nil
}

// runScan executes one scan and maps failures onto HTTP responses. Returns
// nil after writing an error response.
func (h *Handler) runScan(c *gin.Context) *models.ScanResult {
	params, err := scanParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameter", err))
		return nil
	}

	result, err := h.svc.Scan(c.Request.Context(), params)
	if err != nil {
		var missing *screener.MissingColumnError
		var invalid *models.ValidationError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid threshold", err))
		case errors.Is(err, ingestion.ErrNoInputFile):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("no csv file found", err))
		case errors.As(err, &missing):
			c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("required columns not found in csv", err))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("scan failed", err))
		}
		return nil
	}
	return result
}

// GetScan handles GET /api/v1/scan.
//
// GetScan godoc
// @Summary      Run the accumulation screen
// @Description  Screens the input CSV and returns scored candidates sorted by ACCUMULATION_% descending
// @Tags         scan
// @Produce      json
// @Param        min_volume    query     int  false  "Minimum volume in lakhs (1-500)"      example(20)
// @Param        max_distance  query     int  false  "Max % below 52-week high (2-15)"      example(6)
// @Param        min_trades    query     int  false  "Minimum trade count (1000-500000)"    example(10000)
// @Success      200  {object}  dto.ScanResponse   "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Invalid parameter"
// @Failure      404  {object}  dto.ErrorResponse  "No input file"
// @Failure      422  {object}  dto.ErrorResponse  "Missing required columns"
// @Failure      500  {object}  dto.ErrorResponse  "Internal error"
// @Router       /api/v1/scan [get]
func (h *Handler) GetScan(c *gin.Context) {
	result := h.runScan(c)
	if result == nil {
		return
	}
	c.JSON(http.StatusOK, dto.NewScanResponse(result))
}

// ExportScan handles GET /api/v1/scan/export.
//
// ExportScan godoc
// @Summary      Download the screen results as CSV
// @Description  Same filtered+scored rows as /scan, all source columns plus the derived ones, as an attachment
// @Tags         scan
// @Produce      text/csv
// @Param        min_volume    query     int  false  "Minimum volume in lakhs (1-500)"      example(20)
// @Param        max_distance  query     int  false  "Max % below 52-week high (2-15)"      example(6)
// @Param        min_trades    query     int  false  "Minimum trade count (1000-500000)"    example(10000)
// @Success      200  {string}  string             "CSV payload"
// @Failure      400  {object}  dto.ErrorResponse  "Invalid parameter"
// @Failure      404  {object}  dto.ErrorResponse  "No input file"
// @Failure      422  {object}  dto.ErrorResponse  "Missing required columns"
// @Failure      500  {object}  dto.ErrorResponse  "Internal error"
// @Router       /api/v1/scan/export [get]
func (h *Handler) ExportScan(c *gin.Context) {
	result := h.runScan(c)
	if result == nil {
		return
	}

	payload, err := export.Render(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("export failed", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// GetRuns handles GET /api/v1/runs.
//
// GetRuns godoc
// @Summary      List recent scan runs
// @Description  Returns the scan_log audit trail, most recent first. 404 when the scan log is disabled.
// @Tags         scan
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries to return"  example(20)
// @Success      200  {array}   models.ScanRun     "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Scan log disabled"
// @Failure      500  {object}  dto.ErrorResponse  "Internal error"
// @Router       /api/v1/runs [get]
func (h *Handler) GetRuns(c *gin.Context) {
	if h.runs == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("scan log is disabled", nil))
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be a positive integer", err))
			return
		}
		limit = v
	}

	runs, err := h.runs.RecentScanRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list scan runs", err))
		return
	}
	if runs == nil {
		runs = []models.ScanRun{}
	}
	c.JSON(http.StatusOK, runs)
}
