package shipmentstatus

import (
	"context"
	"encoding/json"
	"time"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/common/metrics"
	"tms-edi-suite/internal/common/validation"
	"tms-edi-suite/internal/templating"
	"tms-edi-suite/internal/testdata"
)

const ScenarioName = "shipment-status"

// Builder renders inbound EDI 214 shipment status updates so tracking-board
// tests can move a load through its milestones without a live carrier.
type Builder struct {
	config   *Config
	resolver *testdata.Resolver
	engine   *templating.Engine
	logger   logger.Logger
}

func NewBuilder(config *Config, resolver *testdata.Resolver, engine *templating.Engine, log logger.Logger) *Builder {
	return &Builder{
		config:   config,
		resolver: resolver,
		engine:   engine,
		logger:   log.With(map[string]interface{}{"scenario": ScenarioName}),
	}
}

func (b *Builder) Execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()
	defer func() {
		metrics.ScenarioDuration.WithLabelValues(ScenarioName).Observe(time.Since(start).Seconds())
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	doc, err := b.resolver.GetDocument(b.config.DocumentKey)
	if err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	meta, err := b.resolver.Meta(b.config.DocumentKey)
	if err != nil {
		return nil, err
	}

	hours, minutes := input.EventHours, input.EventMinutes
	if hours == "" || minutes == "" {
		hours, minutes = b.engine.CurrentTime()
	}

	tctx := templating.Context{
		BOLNumber:       input.BOLNumber,
		LoadID:          input.LoadID,
		SubstituteToday: true,
		DateFormat:      templating.DateFormat(b.config.DateFormat),
		Hours:           hours,
		Minutes:         minutes,
		Extra: map[string]string{
			"StatusCode": input.StatusCode,
			"City":       input.City,
			"State":      input.State,
		},
	}

	payload, err := b.engine.Render(doc, templating.StyleFor(meta.TokenStyle), tctx)
	if err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.config.DocumentKey).Inc()

	b.logger.Info("status update rendered", map[string]interface{}{
		"bolNumber":  input.BOLNumber,
		"statusCode": input.StatusCode,
		"city":       input.City,
	})

	return &Output{
		Payload:     payload,
		DocumentKey: b.config.DocumentKey,
		StatusCode:  input.StatusCode,
	}, nil
}

func validateInput(input *Input) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return errors.NewInputValidationError(ScenarioName, err.Error())
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return errors.NewInputValidationError(ScenarioName, err.Error())
	}

	result := validation.ValidateInput(asMap, GetInputSchema())
	if !result.Valid {
		return errors.NewInputValidationError(ScenarioName, result.Summary())
	}
	return nil
}
