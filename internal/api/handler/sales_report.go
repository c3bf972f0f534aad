package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

// ReportEnvelope is the body of every report form submission.
// Failures carry no detail.
type ReportEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type FieldOption struct {
	ID    domain.Field `json:"id"`
	Label string       `json:"label"`
}

type SalesReportSettingsResponse struct {
	Settings domain.FilterSpec `json:"settings"`
	Fields   []FieldOption     `json:"fields"`
}

func writeEnvelope(w http.ResponseWriter, status int, envelope ReportEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope)
}

func writeFailure(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusOK, ReportEnvelope{Success: false})
}

func GetSalesReportSettings(service reporting.SalesReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := service.LoadSettings(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales-report: load settings")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Something went wrong", nil)
			return
		}

		fields := make([]FieldOption, 0, len(domain.AllFields))
		for _, field := range domain.AllFields {
			label, _ := reporting.FieldLabel(field)
			fields = append(fields, FieldOption{ID: field, Label: label})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SalesReportSettingsResponse{
			Settings: spec,
			Fields:   fields,
		})
	}
}

// SubmitSalesReport saves the submitted filter and answers with either the
// HTML preview or the URL of a one-time CSV download
func SubmitSalesReport(service reporting.SalesReporter, auth authenticating.Authenticator, downloadURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		if err := r.ParseForm(); err != nil {
			logger.WithError(err).Warn("sales-report: invalid form body")
			writeFailure(w)
			return
		}

		spec, err := service.SaveSettings(ctx, r.PostForm)
		if err != nil {
			logger.WithError(err).Error("sales-report: save settings")
			writeFailure(w)
			return
		}

		if !isDownloadRequest(r.PostForm.Get("download")) {
			html, err := service.RenderPreview(ctx, spec)
			if err != nil {
				logger.WithError(err).Error("sales-report: render preview")
				writeFailure(w)
				return
			}

			writeEnvelope(w, http.StatusOK, ReportEnvelope{
				Success: true,
				Data:    map[string]string{"html": html},
			})
			return
		}

		if len(spec.Fields) == 0 {
			logger.Warn("sales-report: download requested with no fields selected")
			writeFailure(w)
			return
		}

		claims, _ := ctx.Value(middleware.ContextKeyUser).(*domain.Claims)
		token, expiresAt, err := auth.IssueDownloadToken(claims)
		if err != nil {
			logger.WithError(err).Error("sales-report: issue download token")
			writeFailure(w)
			return
		}

		logger.WithField("expires_at", expiresAt).Debug("sales-report: download token issued")

		writeEnvelope(w, http.StatusOK, ReportEnvelope{
			Success: true,
			Data:    map[string]string{"redirect": downloadURL + "?token=" + url.QueryEscape(token)},
		})
	}
}

// DownloadSalesReport streams the saved report as CSV once the download token is accepted
func DownloadSalesReport(service reporting.SalesReporter, auth authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		token := r.URL.Query().Get("token")
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Download token is required", nil)
			return
		}

		claims, err := auth.ConsumeDownloadToken(token)
		if err != nil {
			logger.WithError(err).Warn("sales-report: download token rejected")
			apiErrors.WriteError(w, tokenErrorCode(err), "Invalid download token", nil)
			return
		}

		logger = logger.WithField("user_id", claims.UserID)

		table, err := service.PrepareDownload(ctx)
		if err != nil {
			if errors.Is(err, reporting.ErrEmptyFieldSelection) {
				logger.Warn("sales-report: download refused, no fields selected")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No report fields selected", nil)
				return
			}
			logger.WithError(err).Error("sales-report: prepare download")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Something went wrong", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.DownloadFilename()))
		w.WriteHeader(http.StatusOK)

		if err := service.WriteCSV(w, table); err != nil {
			logger.WithError(err).Error("sales-report: write csv")
			return
		}

		logger.WithField("rows", len(table.Rows)).Info("sales-report: download served")
	}
}

func tokenErrorCode(err error) string {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}

func isDownloadRequest(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "yes", "on", "true":
		return true
	default:
		return false
	}
}
