package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	SalesReportPath         = "/v1/reports/sales"
	SalesReportDownloadPath = "/v1/reports/sales/download"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// SalesReport returns the routes of the product sales report.
// The download route is authorized by its own single-use token.
func SalesReport(service reporting.SalesReporter, auth authenticating.Authenticator, publicBaseURL string) []router.Route {
	return []router.Route{
		{
			Path:        SalesReportPath + "/settings",
			Method:      http.MethodGet,
			Handler:     GetSalesReportSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        SalesReportPath,
			Method:      http.MethodPost,
			Handler:     SubmitSalesReport(service, auth, publicBaseURL+SalesReportDownloadPath),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:    SalesReportDownloadPath,
			Method:  http.MethodGet,
			Handler: DownloadSalesReport(service, auth),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
