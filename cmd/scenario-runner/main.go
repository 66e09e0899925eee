// cmd/scenario-runner/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tms-edi-suite/internal/common/config"
	stderrors "tms-edi-suite/internal/common/errors"
	transport "tms-edi-suite/internal/common/http"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/common/observability"
	"tms-edi-suite/internal/scenarios/invoice"
	"tms-edi-suite/internal/scenarios/loadtender"
	"tms-edi-suite/internal/scenarios/shipmentstatus"
	"tms-edi-suite/internal/scenarios/tenderresponse"
	"tms-edi-suite/internal/templating"
	"tms-edi-suite/internal/testdata"
	"tms-edi-suite/pkg/registry"
)

func main() {
	scenario := flag.String("scenario", "", "scenario to run: load-tender, tender-response, shipment-status, invoice")
	inputPath := flag.String("input", "", "path to a JSON input file, or - for stdin")
	submit := flag.Bool("submit", false, "submit the rendered payload to the configured TMS endpoint")
	list := flag.Bool("list", false, "list registered document keys and exit")
	serve := flag.Bool("serve", false, "keep running after the scenario and expose /metrics and /health")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("scenario-runner")
	defer obs.Shutdown()

	reg, err := registry.Load(cfg.Data.RegistryFile())
	if err != nil {
		zapLog.Fatal("registry load failed", zap.Error(err))
	}

	resolver := testdata.NewResolver(reg, cfg.Data.DocumentsRoot(), log)

	if *list {
		for _, key := range resolver.Keys() {
			fmt.Println(key)
		}
		return
	}

	engine, err := templating.NewEngine(cfg.Business.Timezone, log)
	if err != nil {
		zapLog.Fatal("engine init failed", zap.Error(err))
	}

	client := transport.NewClient(cfg.TMS.BaseURL, time.Duration(cfg.TMS.RequestTimeout)*time.Millisecond, log)
	reporter := stderrors.NewReporter(log)

	if *serve && cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Port, zapLog)
	}

	if *scenario != "" {
		rawInput, err := readInput(*inputPath)
		if err != nil {
			zapLog.Fatal("input read failed", zap.Error(err))
		}

		timeout := time.Duration(cfg.Scenarios.Get(*scenario).Timeout) * time.Millisecond
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := runScenario(ctx, *scenario, rawInput, *submit, cfg, resolver, engine, client, obs, log); err != nil {
			reporter.Report(*scenario, err)
			if !*serve {
				os.Exit(1)
			}
		}
	} else if !*serve {
		flag.Usage()
		os.Exit(2)
	}

	if *serve {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		zapLog.Info("Shutdown signal received, stopping...")
	}
}

func runScenario(
	ctx context.Context,
	name string,
	rawInput []byte,
	submit bool,
	cfg *config.Config,
	resolver *testdata.Resolver,
	engine *templating.Engine,
	client *transport.Client,
	obs *observability.Observability,
	log logger.Logger,
) error {
	if !cfg.Scenarios.Get(name).Enabled {
		return fmt.Errorf("scenario %q is disabled", name)
	}

	start := time.Now()
	var payload, documentKey, endpoint string

	switch name {
	case loadtender.ScenarioName:
		var input loadtender.Input
		if err := json.Unmarshal(rawInput, &input); err != nil {
			return stderrors.NewInputValidationError(name, err.Error())
		}
		scfg := loadtender.DefaultConfig()
		out, err := loadtender.NewBuilder(scfg, resolver, engine, log).Execute(ctx, &input)
		if err != nil {
			obs.RecordRender(ctx, scfg.DocumentKey, time.Since(start), "error")
			return err
		}
		payload, documentKey, endpoint = out.Payload, out.DocumentKey, scfg.Endpoint

	case tenderresponse.ScenarioName:
		var input tenderresponse.Input
		if err := json.Unmarshal(rawInput, &input); err != nil {
			return stderrors.NewInputValidationError(name, err.Error())
		}
		scfg := tenderresponse.DefaultConfig()
		out, err := tenderresponse.NewBuilder(scfg, resolver, engine, log).Execute(ctx, &input)
		if err != nil {
			obs.RecordRender(ctx, scfg.DocumentKey, time.Since(start), "error")
			return err
		}
		payload, documentKey, endpoint = out.Payload, out.DocumentKey, scfg.Endpoint

	case shipmentstatus.ScenarioName:
		var input shipmentstatus.Input
		if err := json.Unmarshal(rawInput, &input); err != nil {
			return stderrors.NewInputValidationError(name, err.Error())
		}
		scfg := shipmentstatus.DefaultConfig()
		out, err := shipmentstatus.NewBuilder(scfg, resolver, engine, log).Execute(ctx, &input)
		if err != nil {
			obs.RecordRender(ctx, scfg.DocumentKey, time.Since(start), "error")
			return err
		}
		payload, documentKey, endpoint = out.Payload, out.DocumentKey, scfg.Endpoint

	case invoice.ScenarioName:
		var input invoice.Input
		if err := json.Unmarshal(rawInput, &input); err != nil {
			return stderrors.NewInputValidationError(name, err.Error())
		}
		scfg := invoice.DefaultConfig()
		builder, err := invoice.NewBuilder(scfg, resolver, engine, log)
		if err != nil {
			return err
		}
		builder = builder.WithCounter(templating.NewSequenceCounter(cfg.Data.CounterFile()))
		out, err := builder.Execute(ctx, &input)
		if err != nil {
			obs.RecordRender(ctx, scfg.DocumentKey, time.Since(start), "error")
			return err
		}
		payload, documentKey, endpoint = out.Payload, out.DocumentKey, scfg.Endpoint

	default:
		return fmt.Errorf("unknown scenario %q", name)
	}

	obs.RecordRender(ctx, documentKey, time.Since(start), "ok")

	if !submit {
		fmt.Println(payload)
		return nil
	}

	meta, err := resolver.Meta(documentKey)
	if err != nil {
		return err
	}

	submitStart := time.Now()
	result, err := client.SubmitDocument(ctx, endpoint, contentTypeFor(meta.Format), payload)
	if err != nil {
		obs.RecordSubmission(ctx, endpoint, time.Since(submitStart), "error")
		return err
	}
	obs.RecordSubmission(ctx, endpoint, time.Since(submitStart), "ok")

	log.Info("scenario completed", map[string]interface{}{
		"scenario":      name,
		"documentKey":   documentKey,
		"statusCode":    result.StatusCode,
		"correlationId": result.CorrelationID,
	})
	return nil
}

func contentTypeFor(format string) string {
	if format == "json" {
		return "application/json"
	}
	return "text/plain"
}

func readInput(path string) ([]byte, error) {
	switch path {
	case "":
		return []byte("{}"), nil
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(path)
	}
}

func serveMetrics(port int, log *zap.Logger) {
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	http.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	log.Info("Health/Metrics server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error("Health/Metrics server failed", zap.Error(err))
	}
}
