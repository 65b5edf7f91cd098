package handler

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showShifts(message *tgbotapi.Message) {
	h.send(message.Chat.ID, h.catalog.FormatCatalog())
}

func (h *Handler) addShift(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 3 || parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /addshift CODE | Label | Hours | #Color")
		return
	}

	hours, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		h.send(message.Chat.ID, "❌ Hours must be a number, e.g. 7.5")
		return
	}
	color := ""
	if len(parts) > 3 {
		color = parts[3]
	}

	if err := h.catalog.AddCustom(parts[0], parts[1], hours, color); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Added shift %s and resynced the grids", parts[0]))
}

func (h *Handler) removeShift(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /removeshift CODE")
		return
	}

	if err := h.catalog.RemoveCustom(parts[0]); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Removed shift %s", parts[0]))
}

func (h *Handler) hideShift(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /hideshift CODE")
		return
	}

	if err := h.catalog.Hide(parts[0]); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Hidden %s from the catalog", parts[0]))
}

func (h *Handler) unhideShift(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /unhideshift CODE")
		return
	}

	if err := h.catalog.Unhide(parts[0]); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Restored %s to the catalog", parts[0]))
}
