package appServer

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saeed-Underline/fidibo/config"
	"github.com/saeed-Underline/fidibo/internal/fidibo"
	"github.com/saeed-Underline/fidibo/internal/pkg/kafka"
	"github.com/saeed-Underline/fidibo/internal/pkg/storage"
	"github.com/saeed-Underline/fidibo/internal/rating"
	"github.com/saeed-Underline/fidibo/internal/service"
	"github.com/saeed-Underline/fidibo/internal/transport"
	"github.com/saeed-Underline/fidibo/internal/worker"
	"github.com/saeed-Underline/fidibo/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// buildPipeline wires the scrape pipeline and its delivery sinks from
// the config.
func buildPipeline(cfg *config.Config) (service.ShowService, service.DeliveryService) {
	client := fidibo.NewClient(&cfg.Scraper)
	engine := rating.NewEngine(cfg.Rating.PriorMean, cfg.Rating.PriorWeight)

	showService := service.NewShowService(client, engine, cfg.Scraper.HomeURL, cfg.Worker.Count)

	delivery := service.NewDeliveryService(
		os.Stdout,
		storage.NewSnapshotStorage(cfg.Output.Dir),
		cfg.Output.SnapshotFile,
		newBot(&cfg.Telegram),
		cfg.Telegram.ChatID,
		cfg.Telegram.MaxLen,
		newProducer(&cfg.Kafka),
		engine,
	)

	return showService, delivery
}

// RunOnce performs a single scrape-rank-deliver pass and returns.
func RunOnce(cfg *config.Config) error {
	showService, delivery := buildPipeline(cfg)

	shows, err := showService.Scrape(context.Background())
	if err != nil {
		return err
	}
	return delivery.Deliver(shows)
}

// Serve runs periodic scrapes and exposes the latest snapshot over
// HTTP until interrupted.
func Serve(cfg *config.Config) {
	gin.SetMode(ginMode(cfg.Server.Mode))

	showService, delivery := buildPipeline(cfg)

	showHandler := transport.NewShowHandler()
	router := transport.InitRoutes(showHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scrapeWorker := worker.NewScrapeWorker(showService, delivery, showHandler, cfg.Worker.ScrapeInterval)
	go scrapeWorker.Start(ctx)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Error running http server: %v", err)
		}
	}()

	logrus.Infof("Server started on port %s", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Info("Server shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error on server shutdown: %v", err)
	}
}

func newBot(cfg *config.TelegramConfig) *telegram.Bot {
	if !cfg.Enabled || cfg.BotToken == "" {
		logrus.Warn("Telegram bot token not provided, digest delivery disabled")
		return nil
	}
	logrus.Info("Telegram bot initialized")
	return telegram.NewBot(cfg.BotToken)
}

func newProducer(cfg *config.KafkaConfig) kafka.Producer {
	if !cfg.Enabled {
		return nil
	}
	return kafka.NewProducer(cfg.Brokers, cfg.Topic)
}

func ginMode(mode string) string {
	switch mode {
	case "debug", "test":
		return mode
	default:
		return gin.ReleaseMode
	}
}
