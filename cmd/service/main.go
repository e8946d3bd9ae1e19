package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal"
	"github.com/2beens/gymcycle/internal/config"
	"github.com/2beens/gymcycle/internal/logging"
	"github.com/2beens/gymcycle/internal/notify"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	secrets := config.SecretsFromEnv()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "gymcycle-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using storage: %s", cfg.Storage)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if cfg.Storage == config.StorageSheets && (secrets.SheetID == "" || secrets.GoogleServiceAccountJSON == "") {
		log.Errorf("sheet id or service account not set. use GYMCYCLE_SHEET_ID and GYMCYCLE_GOOGLE_SERVICE_ACCOUNT_JSON")
	}
	if cfg.RedisHost != "" && secrets.RedisPassword == "" {
		log.Warnln("redis password not set. use GYMCYCLE_REDIS_PASS")
	}
	if secrets.HoneycombEnabled && secrets.HoneycombAPIKey == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}

	var telegram *notify.Client
	if secrets.TelegramBotToken != "" && secrets.TelegramChatID != "" {
		telegram = notify.NewClient(notify.DefaultBaseURL, secrets.TelegramBotToken, nil)
	} else {
		log.Warnln("telegram not configured, notifications disabled")
	}
	crashNotifier := notify.NewNotifier(telegram, secrets.TelegramChatID, nil)

	defer func() {
		if r := recover(); r != nil {
			reportCrash(crashNotifier, fmt.Sprintf("panic: %v", r))
			os.Exit(1)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:      cfg,
			Secrets:     secrets,
			VersionInfo: versionInfo,
			Telegram:    telegram,
		},
	)
	if err != nil {
		reportCrash(crashNotifier, fmt.Sprintf("new server: %s", err))
		log.Fatalf("new server: %s", err)
	}

	listenErrors, err := server.Serve(ctx, cfg.Host, cfg.Port)
	if err != nil {
		reportCrash(crashNotifier, err.Error())
		log.Fatalf("serve: %s", err)
	}

	select {
	case receivedSig := <-chOsInterrupt:
		log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	case listenErr := <-listenErrors:
		log.Errorf("listen error: %s", listenErr)
		reportCrash(server.Notifier(), listenErr.Error())
		cancel()
		if err := server.GracefulShutdown(); err != nil {
			log.Errorf("graceful shutdown: %s", err)
		}
		os.Exit(1)
	}
	cancel()

	// go to sleep 🥱
	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}

func reportCrash(notifier *notify.Notifier, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := notifier.NotifyNow(ctx, notify.Event{
		Type:   notify.EventServerCrash,
		Reason: reason,
	})
	if err != nil {
		log.Errorf("send crash notification: %s", err)
	}
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
