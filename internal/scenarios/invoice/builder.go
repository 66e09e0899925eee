package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/common/metrics"
	"tms-edi-suite/internal/common/validation"
	"tms-edi-suite/internal/models"
	"tms-edi-suite/internal/templating"
	"tms-edi-suite/internal/testdata"
)

const ScenarioName = "invoice"

// payloadSchema describes the JSON shape the billing intake endpoint accepts.
// Rendered payloads are checked against it before they leave the builder, so a
// broken template fails the test here instead of as an opaque 400 downstream.
const payloadSchema = `{
	"type": "object",
	"required": ["transactionSet", "invoiceNumber", "bolNumber", "loadId", "carrier", "invoiceDate", "charges"],
	"properties": {
		"transactionSet": {"type": "string", "enum": ["210"]},
		"invoiceNumber": {"type": "string", "minLength": 1, "maxLength": 22},
		"bolNumber": {"type": "string", "minLength": 1},
		"loadId": {"type": "string", "minLength": 1},
		"carrier": {
			"type": "object",
			"required": ["id"],
			"properties": {
				"id": {"type": "string", "pattern": "^[A-Z]{2,4}$"},
				"name": {"type": "string"}
			}
		},
		"invoiceDate": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
		"charges": {
			"type": "object",
			"required": ["lineHaul"],
			"properties": {
				"lineHaul": {"type": "number", "minimum": 0},
				"fuelSurcharge": {"type": "number", "minimum": 0},
				"accessorial": {"type": "number", "minimum": 0}
			}
		},
		"totalAmount": {"type": "number", "minimum": 0}
	}
}`

// Builder renders inbound EDI 210 carrier invoices. Unlike the X12 scenarios
// the template is JSON, and the rendered payload is schema-checked before it
// is returned.
type Builder struct {
	config   *Config
	resolver *testdata.Resolver
	engine   *templating.Engine
	schema   *gojsonschema.Schema
	counter  *templating.SequenceCounter
	logger   logger.Logger
}

func NewBuilder(config *Config, resolver *testdata.Resolver, engine *templating.Engine, log logger.Logger) (*Builder, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(payloadSchema))
	if err != nil {
		return nil, errors.NewPayloadValidationError(config.DocumentKey, err.Error())
	}
	return &Builder{
		config:   config,
		resolver: resolver,
		engine:   engine,
		schema:   schema,
		logger:   log.With(map[string]interface{}{"scenario": ScenarioName}),
	}, nil
}

// WithCounter switches generated invoice numbers from datetime stamps to the
// file-backed sequence, so back-to-back invoices in the same minute stay
// unique.
func (b *Builder) WithCounter(counter *templating.SequenceCounter) *Builder {
	b.counter = counter
	return b
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

	invoiceNumber := input.InvoiceNumber
	if invoiceNumber == "" {
		if b.counter != nil {
			seq, err := b.counter.Next()
			if err != nil {
				return nil, err
			}
			invoiceNumber = fmt.Sprintf("INV%06d", seq)
		} else {
			invoiceNumber = "INV" + b.engine.GenerateDateTimeStamp()
		}
	}

	inv := models.Invoice{
		Number:      invoiceNumber,
		BOLNumber:   input.BOLNumber,
		LoadID:      input.LoadID,
		LineHaul:    parseAmount(input.LineHaul),
		FuelSurch:   parseAmount(input.FuelSurcharge),
		Accessorial: parseAmount(input.Accessorial),
	}

	tctx := templating.Context{
		BOLNumber:       input.BOLNumber,
		LoadID:          input.LoadID,
		CarrierID:       input.CarrierID,
		CarrierName:     input.CarrierName,
		InvoiceNumber:   invoiceNumber,
		SubstituteToday: true,
		DateFormat:      templating.DateFormat(b.config.DateFormat),
		Extra: map[string]string{
			"LineHaul":      input.LineHaul,
			"FuelSurcharge": zeroWhenBlank(input.FuelSurcharge),
			"Accessorial":   zeroWhenBlank(input.Accessorial),
			"TotalAmount":   strconv.FormatFloat(inv.Total(), 'f', 2, 64),
		},
	}

	payload, err := b.engine.Render(doc, templating.StyleFor(meta.TokenStyle), tctx)
	if err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}

	if err := b.validatePayload(payload); err != nil {
		metrics.RenderFailures.WithLabelValues(b.config.DocumentKey, string(errors.CodeOf(err))).Inc()
		return nil, err
	}
	metrics.DocumentsRendered.WithLabelValues(b.config.DocumentKey).Inc()

	b.logger.Info("invoice rendered", map[string]interface{}{
		"invoiceNumber": invoiceNumber,
		"bolNumber":     input.BOLNumber,
		"carrierId":     input.CarrierID,
	})

	return &Output{
		Payload:       payload,
		DocumentKey:   b.config.DocumentKey,
		InvoiceNumber: invoiceNumber,
	}, nil
}

func (b *Builder) validatePayload(payload string) error {
	var asJSON interface{}
	if err := json.Unmarshal([]byte(payload), &asJSON); err != nil {
		return errors.NewPayloadValidationError(b.config.DocumentKey, "rendered payload is not valid JSON: "+err.Error())
	}

	result, err := b.schema.Validate(gojsonschema.NewGoLoader(asJSON))
	if err != nil {
		return errors.NewPayloadValidationError(b.config.DocumentKey, err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return errors.NewPayloadValidationError(b.config.DocumentKey, strings.Join(details, "; "))
	}
	return nil
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

func zeroWhenBlank(v string) string {
	if strings.TrimSpace(v) == "" {
		return "0"
	}
	return v
}

// parseAmount is safe to call after input validation has passed: the charge
// fields are blank or match the decimal pattern.
func parseAmount(v string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return f
}
