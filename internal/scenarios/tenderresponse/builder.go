package tenderresponse

import (
	"context"
	"encoding/json"
	"time"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/common/metrics"
	"tms-edi-suite/internal/common/validation"
	"tms-edi-suite/internal/models"
	"tms-edi-suite/internal/templating"
	"tms-edi-suite/internal/testdata"
)

const ScenarioName = "tender-response"

// Builder renders inbound EDI 990 tender responses as a carrier would send
// them, driving the TMS auto-accept path.
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

	actionCode := "A"
	if !input.Accept {
		actionCode = "D"
	}

	carrier := models.Carrier{ID: input.CarrierID, Name: input.CarrierName}

	tctx := templating.Context{
		BOLNumber:       input.BOLNumber,
		CarrierID:       carrier.ID,
		CarrierName:     carrier.Name,
		SubstituteToday: true,
		DateFormat:      templating.DateFormat(b.config.DateFormat),
		Extra: map[string]string{
			"ActionCode":    actionCode,
			"DeclineReason": input.DeclineReason,
		},
	}

	payload, err := b.engine.Render(doc, templating.StyleFor(meta.TokenStyle), tctx)
	if err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.config.DocumentKey).Inc()

	b.logger.Info("tender response rendered", map[string]interface{}{
		"bolNumber":  input.BOLNumber,
		"carrierId":  carrier.ID,
		"actionCode": actionCode,
	})

	return &Output{
		Payload:     payload,
		DocumentKey: b.config.DocumentKey,
		ActionCode:  actionCode,
		Carrier:     carrier,
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
