package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/adrianliechti/paddleocr-ui/config"
	"github.com/adrianliechti/paddleocr-ui/pkg/limiter"
	"github.com/adrianliechti/paddleocr-ui/pkg/ocr"
	"github.com/adrianliechti/paddleocr-ui/pkg/otel"
	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"
	"github.com/adrianliechti/paddleocr-ui/server"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(run).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config string

	apiURL string
	apiKey string

	host  string
	port  int
	share bool

	debug bool
	limit int
}

func newRootCommand(run func(context.Context, *config.Config) error) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "paddleocr-ui",
		Short: "Web UI for the PaddleOCR-VL layout parsing API",

		Version: version,

		Args:         cobra.NoArgs,
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &f)

			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "Path to a YAML config file")

	cmd.Flags().StringVar(&f.apiURL, "api-url", config.DefaultAPIURL, "API endpoint URL")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "API key for authentication")

	cmd.Flags().StringVar(&f.host, "host", config.DefaultHost, "Host to bind to")
	cmd.Flags().IntVar(&f.port, "port", config.DefaultPort, "Port to bind to")
	cmd.Flags().BoolVar(&f.share, "share", false, "Allow cross-origin access and listen for remote clients")

	cmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug mode to log API requests and responses")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Maximum API requests per second (0 disables limiting)")

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Parse(f.config)

	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed

	if changed("api-url") {
		cfg.APIURL = f.apiURL
	}

	if changed("api-key") {
		cfg.APIKey = f.apiKey
	}

	if changed("host") {
		cfg.Host = f.host
	}

	if changed("port") {
		cfg.Port = f.port
	}

	if changed("share") {
		cfg.Share = f.share
	}

	if changed("debug") {
		cfg.Debug = f.debug
	}

	if changed("limit") {
		cfg.Limit = f.limit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	setupLogger(cfg.Debug)

	shutdown, err := otel.Setup(ctx, "paddleocr-ui", version)

	if err != nil {
		return err
	}

	defer shutdown(context.Background())

	client, err := paddle.New(cfg.APIURL,
		paddle.WithClient(&http.Client{
			Timeout:   120 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
		paddle.WithHeaders(cfg.Headers()),
		paddle.WithDebug(cfg.Debug),
	)

	if err != nil {
		return err
	}

	var p paddle.Provider = client

	p = limiter.NewProvider(cfg.Limiter(), p)
	p = otel.NewProvider("paddle", p)

	s, err := server.New(cfg, ocr.New(p))

	if err != nil {
		return err
	}

	if cfg.Debug {
		slog.Debug("debug mode enabled")
	}

	slog.Info("starting PaddleOCR-VL Web UI", "url", "http://"+cfg.Address(), "api", cfg.APIURL)

	if cfg.Share {
		for _, addr := range shareAddresses(cfg.Port) {
			slog.Info("sharing web ui", "url", addr)
		}
	}

	return s.ListenAndServe(ctx)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo

	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

// shareAddresses lists the non-loopback URLs other machines can reach the UI on.
func shareAddresses(port int) []string {
	addrs, err := net.InterfaceAddrs()

	if err != nil {
		return nil
	}

	var result []string

	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)

		if !ok || ipnet.IP.IsLoopback() || ipnet.IP.IsLinkLocalUnicast() {
			continue
		}

		result = append(result, "http://"+net.JoinHostPort(ipnet.IP.String(), strconv.Itoa(port)))
	}

	return result
}
