package http

import (
	"net/http"
	"time"

	"dealer-analytics/internal/aggregators"
	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/validators"
)

type summaryQuery struct {
	Range string `validate:"omitempty,oneof=24h 7d 30d 90d"`
	From  string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	To    string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type summaryHandler struct {
	summaryService aggregators.SummaryService
	defaultRange   models.RangeWindow
	validate       *validators.Validate
	now            func() time.Time
}

func NewSummaryHandler(summaryService aggregators.SummaryService, defaultRange models.RangeWindow) AppHttpHandler {
	return &summaryHandler{
		summaryService: summaryService,
		defaultRange:   defaultRange,
		validate:       validators.New(),
		now:            time.Now,
	}
}

// Handle processes GET /analytics/summary?range=7d or ?from=&to= requests.
// An explicit from/to pair takes precedence over range.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summaryRange, err := h.resolveRange(r)
	if err != nil {
		return err
	}

	result, err := h.summaryService.Summarize(r.Context(), summaryRange)
	if err != nil {
		return err
	}

	if result.Stale {
		loggers.Ctx(r.Context()).Warn().
			Time(loggers.FieldRangeStart, summaryRange.Start).
			Time(loggers.FieldRangeEnd, summaryRange.End).
			Str(loggers.FieldRangeWindow, string(summaryRange.Window)).
			Msg("serving stale summary")
	}

	writeJSONResponse(w, http.StatusOK, newSummaryResponse(result.Summary, result.Stale))
	return nil
}

func (h *summaryHandler) resolveRange(r *http.Request) (models.SummaryRange, error) {
	values := r.URL.Query()
	query := summaryQuery{
		Range: values.Get("range"),
		From:  values.Get("from"),
		To:    values.Get("to"),
	}

	if err := h.validate.Struct(query); err != nil {
		return models.SummaryRange{}, errInvalidSummaryQuery("invalid summary query: "+validators.Describe(err), err)
	}
	if (query.From == "") != (query.To == "") {
		return models.SummaryRange{}, errInvalidSummaryQuery("invalid summary query: from and to must be given together", nil)
	}

	if query.From != "" {
		// both already validated as RFC3339
		start, _ := time.Parse(time.RFC3339, query.From)
		end, _ := time.Parse(time.RFC3339, query.To)
		return models.NewExplicitRange(start, end), nil
	}

	window := h.defaultRange
	if query.Range != "" {
		window = models.RangeWindow(query.Range)
	}
	return models.NewWindowRange(window, h.now()), nil
}
