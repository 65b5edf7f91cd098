package handler

import (
	"strings"

	"rota-manager/internal/config"
	"rota-manager/internal/service"
	"rota-manager/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client      *telegram.Client
	staff       *service.StaffService
	catalog     *service.CatalogService
	sheets      *service.SheetService
	schedule    *service.ScheduleService
	absences    *service.AbsenceService
	allocations *service.AllocationService
	config      *config.BotConfig
	logger      *logrus.Logger
}

func NewHandler(
	client *telegram.Client,
	staff *service.StaffService,
	catalog *service.CatalogService,
	sheets *service.SheetService,
	schedule *service.ScheduleService,
	absences *service.AbsenceService,
	allocations *service.AllocationService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:      client,
		staff:       staff,
		catalog:     catalog,
		sheets:      sheets,
		schedule:    schedule,
		absences:    absences,
		allocations: allocations,
		config:      cfg,
		logger:      logrus.New(),
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			h.handleCommand(update.Message)
			continue
		}

		h.send(update.Message.Chat.ID, "Use /help to see the available commands.")
	}
}

// isAdmin gates mutating commands to the configured admin chat.
func (h *Handler) isAdmin(message *tgbotapi.Message) bool {
	if message.Chat.ID == h.config.AdminChatID {
		return true
	}
	h.logger.WithField("chat_id", message.Chat.ID).Warn("Rejected admin command")
	h.send(message.Chat.ID, "⛔ This command is restricted to the rota administrator.")
	return false
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		h.logger.WithError(err).Error("Failed to send message")
	}
}

// splitArgs splits pipe-separated command arguments, since staff names
// and month names contain spaces.
func splitArgs(args string) []string {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
