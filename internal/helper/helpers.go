package helper

import (
	"fmt"
	"net/http"
	"sync"
)

// ErrorReporter is the slice of the error handler that background tasks
// need; declared here to keep this package free of the errHandler import.
type ErrorReporter interface {
	ReportServerError(r *http.Request, err error)
}

type HelperRepository struct {
	WG       *sync.WaitGroup
	reporter ErrorReporter
}

func New(wg *sync.WaitGroup, reporter ErrorReporter) *HelperRepository {
	return &HelperRepository{
		WG:       wg,
		reporter: reporter,
	}
}

// BackgroundTask runs fn on its own goroutine, tracked by the application
// wait group so a graceful shutdown lets in-flight tasks finish. Panics and
// errors are reported, never propagated to the caller.
func (h *HelperRepository) BackgroundTask(r *http.Request, fn func() error) {
	h.WG.Add(1)

	go func() {
		defer h.WG.Done()

		defer func() {
			err := recover()
			if err != nil {
				h.reporter.ReportServerError(r, fmt.Errorf("%s", err))
			}
		}()

		err := fn()
		if err != nil {
			h.reporter.ReportServerError(r, err)
		}
	}()
}
