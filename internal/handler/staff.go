package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showStaff(message *tgbotapi.Message) {
	entries := h.staff.Available()
	h.send(message.Chat.ID, h.staff.FormatStaff(entries))
}

func (h *Handler) addStaff(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /addstaff Name | Role")
		return
	}
	role := ""
	if len(parts) > 1 {
		role = parts[1]
	}

	if err := h.staff.AddStaff(parts[0], role); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Added %s to the staff list", parts[0]))
}

func (h *Handler) removeStaff(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if parts[0] == "" {
		h.send(message.Chat.ID, "Usage: /removestaff Name")
		return
	}

	if err := h.staff.RemoveStaff(parts[0]); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, fmt.Sprintf("✅ Removed %s and cleared their rows", parts[0]))
}
