package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sandgren/gift-rates/internal/currencies"
	"github.com/sandgren/gift-rates/internal/facades"
	"github.com/sandgren/gift-rates/internal/handlers"
	"github.com/sandgren/gift-rates/internal/logger"
	"github.com/sandgren/gift-rates/internal/middlewares"
	"github.com/sandgren/gift-rates/internal/repositories"
	"github.com/sandgren/gift-rates/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the tool
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const usage = `Usage: gift-rates [-c config.env] <command> [args]

Commands:
  convert <amount> <from> <to> [decimals]             convert an amount
  format <amount> <currency> [display] [recipient]    render an amount for display
  refresh <base>                                      force a rate refetch
  status <base>                                       inspect the rate cache
  clear                                               delete the rate cache
  currencies                                          list advertised currencies
  serve                                               run the HTTP gateway
  version                                             print build info
`

func main() {
	configPath, args := parseFlags()

	logLevel, apiURL, httpTimeoutSec,
		cacheBackend, cachePath,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLHours,
		appHost, appPort,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), args,
		logLevel, apiURL, httpTimeoutSec,
		cacheBackend, cachePath,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLHours,
		appHost, appPort,
	); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("gift-rates version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the remaining subcommand arguments.
func parseFlags() (string, []string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c, flag.Args()
}

// parseConfig loads environment variables from a file and returns the
// provider, cache, logging, and gateway configuration. The TTL env override
// is deliberately not read here; the TTL resolver owns it.
func parseConfig(path string) (
	logLevel, apiURL string, httpTimeoutSec int,
	cacheBackend, cachePath string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLHours int,
	appHost, appPort string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Logging and provider config
	logLevel = getEnv("APP_LOG_LEVEL", "error")
	apiURL = getEnv("RATE_API_URL", "")
	if httpTimeoutSec, err = strconv.Atoi(getEnv("RATE_API_TIMEOUT_SECONDS", "10")); err != nil {
		return
	}

	// Cache config. APP_CACHE_TTL_HOURS is the per-user config field;
	// CACHE_TTL_HOURS remains a pure environment override on top of it.
	cacheBackend = getEnv("CACHE_BACKEND", "file")
	cachePath = getEnv("CACHE_FILE", "")
	if cacheTTLHours, err = strconv.Atoi(getEnv("APP_CACHE_TTL_HOURS", "0")); err != nil {
		return
	}

	// Redis config (serve mode with CACHE_BACKEND=redis)
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Gateway config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")

	return
}

// run initializes the logger and the conversion service, then dispatches the
// subcommand.
func run(ctx context.Context, args []string,
	logLevel, apiURL string, httpTimeoutSec int,
	cacheBackend, cachePath string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLHours int,
	appHost, appPort string,
) error {
	if err := logger.Initialize(logLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync() //nolint:errcheck

	var store services.RateStore
	switch cacheBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(redisHost, strconv.Itoa(redisPort)),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
		defer client.Close()
		store = repositories.NewRedisStore(client)
	case "file":
		if cachePath == "" {
			var err error
			if cachePath, err = repositories.DefaultCachePath(); err != nil {
				return err
			}
		}
		store = repositories.NewFileStore(cachePath)
	default:
		return fmt.Errorf("unknown cache backend %q", cacheBackend)
	}

	fetcher := facades.NewExchangeRateHTTPFacade(apiURL, time.Duration(httpTimeoutSec)*time.Second)
	svc := services.NewConversionService(store, fetcher, cacheTTLHours)

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("no command given")
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "convert":
		return runConvert(ctx, svc, rest)
	case "format":
		return runFormat(ctx, svc, rest)
	case "refresh":
		base, err := currencyArg(rest, 0)
		if err != nil {
			return err
		}
		if err := svc.Refresh(ctx, base); err != nil {
			return err
		}
		fmt.Printf("rates for %s refreshed\n", base)
		return nil
	case "status":
		base, err := currencyArg(rest, 0)
		if err != nil {
			return err
		}
		return printJSON(svc.Status(ctx, base))
	case "clear":
		if err := svc.ClearCache(ctx); err != nil {
			return err
		}
		fmt.Println("rate cache cleared")
		return nil
	case "currencies":
		for _, code := range currencies.Supported() {
			fmt.Println(code)
		}
		return nil
	case "serve":
		return serve(ctx, svc, appHost, appPort)
	case "version":
		printBuildInfo()
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runConvert(ctx context.Context, svc *services.ConversionService, args []string) error {
	if len(args) < 3 {
		return errors.New("convert needs <amount> <from> <to> [decimals]")
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	from, err := currencyArg(args, 1)
	if err != nil {
		return err
	}
	to, err := currencyArg(args, 2)
	if err != nil {
		return err
	}
	decimals := services.DefaultDecimals
	if len(args) > 3 {
		if decimals, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("invalid decimals %q", args[3])
		}
	}

	res := svc.Convert(ctx, amount, from, to, decimals)
	if err := printJSON(res); err != nil {
		return err
	}
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

func runFormat(ctx context.Context, svc *services.ConversionService, args []string) error {
	if len(args) < 2 {
		return errors.New("format needs <amount> <currency> [display] [recipient]")
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	base, err := currencyArg(args, 1)
	if err != nil {
		return err
	}
	display := ""
	if len(args) > 2 && args[2] != "" {
		if display, err = currencyArg(args, 2); err != nil {
			return err
		}
	}
	recipient := ""
	if len(args) > 3 {
		recipient = args[3]
	}

	fmt.Println(svc.FormatOutput(ctx, amount, base, display, recipient, services.DefaultDecimals))
	return nil
}

// currencyArg normalizes and validates a positional currency code argument.
func currencyArg(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", errors.New("missing currency code")
	}
	code := currencies.Normalize(args[i])
	if !currencies.IsValid(code) {
		return "", fmt.Errorf("invalid currency code %q", args[i])
	}
	return code, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// serve runs the HTTP gateway with request logging and graceful shutdown.
func serve(ctx context.Context, svc *services.ConversionService, host, port string) error {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(api chi.Router) {
		handlers.RegisterConvertHandler(api, handlers.NewConvertHandler(svc))
		handlers.RegisterFormatHandler(api, handlers.NewFormatHandler(svc))
		handlers.RegisterRefreshHandler(api, handlers.NewRefreshHandler(svc))
		handlers.RegisterStatusHandler(api, handlers.NewStatusHandler(svc))
		handlers.RegisterClearHandler(api, handlers.NewClearHandler(svc))
		handlers.RegisterCurrenciesHandler(api, handlers.NewCurrenciesHandler())
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(host, port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Log.Infof("gateway listening on %s", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Log.Info("shutting down gateway")
	return srv.Shutdown(shutdownCtx)
}
