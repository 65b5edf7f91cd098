package handler

import (
	"strconv"

	"rota-manager/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// logAbsence handles:
// /absence Name | Annual Leave | 2025-03-30 | 2025-04-02 [| reason]
func (h *Handler) logAbsence(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 4 {
		h.send(message.Chat.ID, "Usage: /absence Name | Annual Leave | 2025-03-30 | 2025-04-02 [| reason]")
		return
	}

	start, err := dates.ParseDate(parts[2])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	end, err := dates.ParseDate(parts[3])
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	reason := ""
	if len(parts) > 4 {
		reason = parts[4]
	}

	result, err := h.absences.LogAbsence(parts[0], parts[1], start, end, reason)
	if err != nil {
		h.logger.WithError(err).Error("Absence logging failed")
		h.send(message.Chat.ID, "❌ Something went wrong logging the absence.")
		return
	}
	if !result.Success && result.Record == nil {
		h.send(message.Chat.ID, "❌ "+result.Message)
		return
	}
	h.send(message.Chat.ID, "✅ "+result.Message)
}

func (h *Handler) showAbsences(message *tgbotapi.Message, args string) {
	parts := splitArgs(args)

	records, err := h.absences.ListAbsences(parts[0])
	if err != nil {
		h.logger.WithError(err).Error("Failed to list absences")
		h.send(message.Chat.ID, "❌ Could not read the absence log.")
		return
	}
	h.send(message.Chat.ID, h.absences.FormatAbsences(records))
}

// setAllowance handles: /allowance Name | days
func (h *Handler) setAllowance(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 2 {
		h.send(message.Chat.ID, "Usage: /allowance Name | days")
		return
	}

	days, err := strconv.Atoi(parts[1])
	if err != nil {
		h.send(message.Chat.ID, "❌ Days must be a whole number.")
		return
	}

	if err := h.allocations.SetDefault(parts[0], days); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, "✅ Allocation updated and grids resynced")
}

// setAllowanceForYear handles: /allowanceyear Name | year | days
func (h *Handler) setAllowanceForYear(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 3 {
		h.send(message.Chat.ID, "Usage: /allowanceyear Name | year | days")
		return
	}

	year, err1 := strconv.Atoi(parts[1])
	days, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		h.send(message.Chat.ID, "❌ Year and days must be whole numbers.")
		return
	}

	if err := h.allocations.SetForYear(parts[0], year, days); err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, "✅ "+h.allocations.FormatAllocation(parts[0], year, days))
}
