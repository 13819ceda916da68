package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"myonion-telegram-bot/config"
	"myonion-telegram-bot/internal/commands"
	"myonion-telegram-bot/internal/logo"
	"myonion-telegram-bot/internal/price"
	"myonion-telegram-bot/internal/telegram"
	"myonion-telegram-bot/internal/token"
	"myonion-telegram-bot/lib/translation"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type BotMetrics struct {
	CommandsProcessed  prometheus.Counter
	MessagesHandled    prometheus.Counter
	CallbacksHandled   prometheus.Counter
	ChannelsCount      prometheus.Gauge
	ChannelNames       *prometheus.CounterVec
	ChannelsSet        map[int64]string
	MessagesPerChannel *prometheus.CounterVec
	Mutex              sync.Mutex
}

var (
	metrics = NewBotMetrics(prometheus.DefaultRegisterer)
)

func init() {
	config.InitConfig()
	setupLogging()
}

func NewBotMetrics(registerer prometheus.Registerer) *BotMetrics {
	metrics := &BotMetrics{
		CommandsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "myonion",
			Subsystem: "telegram_bot",
			Name:      "commands_processed",
			Help:      "The total number of replies delivered",
		}),
		MessagesHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "myonion",
			Subsystem: "telegram_bot",
			Name:      "messages_handled",
			Help:      "The total number of handled messages",
		}),
		CallbacksHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "myonion",
			Subsystem: "telegram_bot",
			Name:      "callbacks_handled",
			Help:      "The total number of handled button callbacks",
		}),
		ChannelsCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "myonion",
			Subsystem: "telegram_bot",
			Name:      "channels_count",
			Help:      "The current number of unique channels the bot is operating in",
		}),
		ChannelNames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "myonion",
				Subsystem: "telegram_bot",
				Name:      "channel_names",
				Help:      "Tracks channels the bot has interacted with",
			},
			[]string{"chat_id", "chat_name"},
		),
		MessagesPerChannel: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "myonion",
				Subsystem: "telegram_bot",
				Name:      "messages_per_channel",
				Help:      "The total number of messages handled per channel",
			},
			[]string{"chat_id", "chat_name"},
		),
		ChannelsSet: make(map[int64]string),
	}

	registerer.MustRegister(
		metrics.CommandsProcessed,
		metrics.MessagesHandled,
		metrics.CallbacksHandled,
		metrics.ChannelsCount,
		metrics.ChannelNames,
		metrics.MessagesPerChannel,
	)

	return metrics
}

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	translation.Configure("locales", cfg.Lang)

	responder := newResponder(cfg)

	bot, err := telegram.NewBot(telegram.BotConfig{
		Token:          cfg.TelegramBotToken,
		Debug:          cfg.Debug,
		UpdatesTimeout: 60,
	}, responder)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	updates, err := bot.GetUpdatesChannel()
	if err != nil {
		log.Fatalf("Failed to get updates channel: %v", err)
	}

	go handleUpdates(bot, updates)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		bot.StopReceivingUpdates()
		log.Info("Shutting down...")
		os.Exit(0)
	}()

	log.Infof("Bot is running (language %s)", translation.GetLanguage())

	if err := launchMetricsAndHealthServer(cfg.MetricsPort); err != nil {
		log.Fatalf("Failed to start metrics and health server: %v", err)
	}
}

func newResponder(cfg config.Config) *commands.Responder {
	httpClient := &http.Client{}

	var prices price.Source
	switch cfg.PriceProvider {
	case config.ProviderCoinPaprika:
		prices = price.NewPaprikaSource(httpClient, cfg.APIProKey, cfg.PaprikaCoinID)
	default:
		prices = price.NewGeckoSource(cfg.PriceAPIURL, "alephium", httpClient)
	}

	return commands.NewResponder(
		token.NewClient(cfg.TokenAPIURL, httpClient),
		prices,
		logo.NewFetcher(cfg.ImageCDNURL, httpClient),
		commands.Settings{
			SiteURL:     cfg.SiteURL,
			TotalSupply: cfg.DefaultSupply,
		},
	)
}

func setupLogging() {
	log.SetLevel(log.ErrorLevel)
	if config.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("Starting telegram bot...")
}

// handleUpdates runs every update in its own goroutine; the handlers share no mutable state.
func handleUpdates(bot *telegram.Bot, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		go handleUpdate(bot, update)
	}
}

func handleUpdate(bot *telegram.Bot, update tgbotapi.Update) {
	defer recoverHandler()

	recordUpdate(update)

	if err := bot.HandleUpdate(context.Background(), update); err != nil {
		log.Errorf("Failed to handle update %d: %v", update.UpdateID, err)
		return
	}
	if update.Message != nil || update.CallbackQuery != nil {
		metrics.CommandsProcessed.Inc()
	}
}

func recoverHandler() {
	if r := recover(); r != nil {
		log.Errorf("Recovered from panic: %v\nStack trace: %s", r, debug.Stack())
	}
}

func recordUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		metrics.CallbacksHandled.Inc()
		return
	}
	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	metrics.MessagesHandled.Inc()

	chatID := update.Message.Chat.ID
	chatName := update.Message.Chat.Title
	if chatName == "" {
		chatName = fmt.Sprintf("%s-%d", "PrivateChat", chatID)
	}

	updateChannelsSet(chatID, chatName)

	metrics.MessagesPerChannel.WithLabelValues(
		fmt.Sprintf("%d", chatID), chatName,
	).Inc()
}

func updateChannelsSet(chatID int64, chatName string) {
	metrics.Mutex.Lock()
	defer metrics.Mutex.Unlock()

	if _, exists := metrics.ChannelsSet[chatID]; !exists {
		metrics.ChannelsSet[chatID] = chatName
		metrics.ChannelsCount.Set(float64(len(metrics.ChannelsSet)))

		metrics.ChannelNames.WithLabelValues(fmt.Sprintf("%d", chatID), chatName).Inc()
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", healthCheckHandler)
	return r
}

func launchMetricsAndHealthServer(port int) error {
	log.Infof("Launching metrics and health endpoint on :%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), newRouter())
}
