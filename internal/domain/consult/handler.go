package consult

import (
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/mediagent/mediagent/internal/domain/report"
	"github.com/mediagent/mediagent/internal/platform/auth"
)

type Handler struct {
	svc     *Service
	reports *report.Service
}

// NewHandler wires the processing pipeline and the report service used to
// persist results on request.
func NewHandler(svc *Service, reports *report.Service) *Handler {
	return &Handler{svc: svc, reports: reports}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("admin", "physician", "nurse")

	g := api.Group("/consultations", role)
	g.POST("/process-text", h.ProcessText)
	g.POST("/process-audio", h.ProcessAudio)
}

type processTextRequest struct {
	Text       string `json:"text"`
	Language   string `json:"language"`
	PatientID  string `json:"patient_id"`
	Title      string `json:"title"`
	SaveReport bool   `json:"save_report"`
}

func (h *Handler) ProcessText(c echo.Context) error {
	var req processTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.ProcessText(c.Request().Context(), req.Text, req.Language)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SaveReport {
		if err := h.saveReport(c, result, req.PatientID, req.Title); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ProcessAudio(c echo.Context) error {
	fh, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open upload")
	}
	defer src.Close()

	// Spool the upload to a temp file so the transcriber reads from disk;
	// the file is removed once the response is written.
	tmp, err := os.CreateTemp("", "consult-audio-*")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process upload")
	}
	defer func() {
		tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil {
			log.Warn().Err(err).Str("path", tmp.Name()).Msg("failed to remove upload temp file")
		}
	}()
	if _, err := io.Copy(tmp, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process upload")
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process upload")
	}

	result, err := h.svc.ProcessAudio(
		c.Request().Context(),
		tmp,
		fh.Size,
		fh.Header.Get("Content-Type"),
		c.FormValue("language"),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if c.FormValue("save_report") == "true" {
		if err := h.saveReport(c, result, c.FormValue("patient_id"), c.FormValue("title")); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) saveReport(c echo.Context, result *ProcessingResult, patientID, title string) error {
	var pid *uuid.UUID
	if patientID != "" {
		id, err := uuid.Parse(patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		pid = &id
	}
	_, err := h.reports.CreateFromResult(
		c.Request().Context(), pid, title,
		result.Transcription.Text, result.Transcription.Language,
		result.Data, result.Suggestions, result.Confidence,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to save report from processing result")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save report")
	}
	return nil
}
