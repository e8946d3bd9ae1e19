package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/bot"
	"github.com/2beens/gymcycle/internal/config"
	"github.com/2beens/gymcycle/internal/logging"
	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/telemetry/metrics"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

func main() {
	fmt.Println("starting bot ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	metricsAddr := flag.String("metrics-addr", "", "host:port for the prometheus metrics endpoint, disabled when empty")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	secrets := config.SecretsFromEnv()
	// bot logs go to stdout only
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "gymcycle-bot",
	})

	if secrets.TelegramBotToken == "" {
		log.Fatalln("bot token not set. use GYMCYCLE_TELEGRAM_BOT_TOKEN")
	}
	log.Debugf("using api base: %s", cfg.APIBase)

	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "gymcycle-bot", nil)
	if err != nil {
		log.Fatalf("honeycomb setup: %s", err)
	}
	defer otelShutdown()

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gymcycle", "bot", promRegistry)

	telegram := notify.NewClient(notify.DefaultBaseURL, secrets.TelegramBotToken, nil)
	api := bot.NewAPIClient(cfg.APIBase, nil)

	b := bot.NewBot(bot.NewBotParams{
		Telegram:       telegram,
		API:            api,
		Mode:           cfg.DefaultMode,
		Location:       cfg.Location(),
		MetricsManager: metricsManager,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reminder *bot.Reminder
	if cfg.ReminderEnabled {
		notifier := notify.NewNotifier(telegram, secrets.TelegramChatID, metricsManager)
		if !notifier.Enabled() {
			log.Warnln("reminder enabled but chat id not set. use GYMCYCLE_TELEGRAM_CHAT_ID")
		}
		reminder, err = bot.NewReminder(cfg.ReminderCron, cfg.Location(), api, notifier, cfg.DefaultMode)
		if err != nil {
			log.Fatalf("reminder: %s", err)
		}
		reminder.Start()
		log.Debugf("daily reminder scheduled [%s] in %s", cfg.ReminderCron, cfg.Location())
	}

	var metricsServer *http.Server
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:              *metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			log.Infof("bot metrics listening on %s", *metricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server: %s", err)
			}
		}()
	}

	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		log.Infoln("🤖 bot polling started")
		if err := b.Run(ctx); err != nil {
			log.Errorf("bot run: %s", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, stopping bot ...", receivedSig)

	cancel()
	<-botDone

	if reminder != nil {
		reminder.Stop()
	}
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("metrics server shutdown: %s", err)
		}
	}
	log.Infoln("bot stopped")
}
