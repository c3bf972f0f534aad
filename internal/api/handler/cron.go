package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

const CronJobTypeDownloadTokenSweep = "download-token-sweep"

// CronJob is a background job that can also be run on demand
type CronJob interface {
	TriggerManualSweep()
	GetStatus() map[string]any
}

type CronJobServices struct {
	DownloadTokenSweep CronJob
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeDownloadTokenSweep:
			if services.DownloadTokenSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Download token sweep is not available", nil)
				return
			}
			services.DownloadTokenSweep.TriggerManualSweep()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type. Accepted values: "+CronJobTypeDownloadTokenSweep, nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DownloadTokenSweep != nil {
			status[CronJobTypeDownloadTokenSweep] = services.DownloadTokenSweep.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
