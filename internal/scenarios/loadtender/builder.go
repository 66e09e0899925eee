package loadtender

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

const ScenarioName = "load-tender"

// Builder renders outbound EDI 204 load tenders.
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

	load := models.Load{
		BOLNumber:     input.BOLNumber,
		LoadID:        input.LoadID,
		ContainerCode: input.ContainerCode,
		TrailerNumber: input.TrailerNumber,
	}
	if load.BOLNumber == "" {
		load.BOLNumber = b.engine.GenerateBOLNumber(b.config.BOLPrefix)
	}
	if load.TrailerNumber == "" {
		load.TrailerNumber = templating.GenerateTrailerNumber()
	}

	pickup := models.Stop{Sequence: 1, Type: "pickup", InHour: input.PickInHour, OutHour: input.PickOutHour}
	delivery := models.Stop{Sequence: 2, Type: "delivery", InHour: input.DropInHour, OutHour: input.DropOutHour}

	hours, minutes := b.engine.CurrentTime()

	tctx := templating.Context{
		BOLNumber:          load.BOLNumber,
		LoadID:             load.LoadID,
		ContainerCode:      load.ContainerCode,
		TrailerNumber:      load.TrailerNumber,
		CarrierID:          input.CarrierID,
		CarrierName:        input.CarrierName,
		SubstituteToday:    input.PickupToday,
		SubstituteTomorrow: input.PickupTomorrow,
		DateFormat:         templating.DateFormat(b.config.DateFormat),
		Hours:              hours,
		Minutes:            minutes,
		PickInHour:         templating.Hour(pickup.InHour),
		PickOutHour:        templating.Hour(pickup.OutHour),
		DropInHour:         templating.Hour(delivery.InHour),
		DropOutHour:        templating.Hour(delivery.OutHour),
	}

	payload, err := b.engine.Render(doc, templating.StyleFor(meta.TokenStyle), tctx)
	if err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.config.DocumentKey).Inc()

	b.logger.Info("load tender rendered", map[string]interface{}{
		"bolNumber":     load.BOLNumber,
		"loadId":        load.LoadID,
		"trailerNumber": load.TrailerNumber,
	})

	return &Output{
		Payload:     payload,
		DocumentKey: b.config.DocumentKey,
		Load:        load,
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
	// JSON round-trip turns the hour fields into float64; the schema expects
	// that for numeric checks.
	for _, field := range []string{"pickInHour", "pickOutHour", "dropInHour", "dropOutHour"} {
		if v, ok := asMap[field].(float64); ok {
			asMap[field] = int(v)
		}
	}

	result := validation.ValidateInput(asMap, GetInputSchema())
	if !result.Valid {
		return errors.NewInputValidationError(ScenarioName, result.Summary())
	}
	return nil
}
