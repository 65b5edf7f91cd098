package handler

import (
	"strconv"
	"strings"
	"time"

	"rota-manager/internal/service"
	"rota-manager/pkg/dates"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// applyPattern handles the date-anchored form:
// /pattern Name | EARLY,EARLY,OFF | 2025-03-01 | 2025-03-31
func (h *Handler) applyPattern(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 4 {
		h.send(message.Chat.ID, "Usage: /pattern Name | EARLY,EARLY,OFF | 2025-03-01 | 2025-03-31")
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

	result, err := h.schedule.ApplyPattern(parts[0], parts[1], start, end)
	if err != nil {
		h.logger.WithError(err).Error("Pattern application failed")
		h.send(message.Chat.ID, "❌ Something went wrong applying the pattern.")
		return
	}
	h.send(message.Chat.ID, h.schedule.FormatResult(result))
}

// applyRolling handles the month-driven form:
// /rolling Name | EARLY,LATE,OFF | startDay | endDay | 3 [| 2025-03-10]
// The fifth argument is a month count or "march" for until-next-March.
// The optional sixth is a new starter's first working day.
func (h *Handler) applyRolling(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	parts := splitArgs(args)
	if len(parts) < 5 {
		h.send(message.Chat.ID, "Usage: /rolling Name | EARLY,LATE,OFF | startDay | endDay | months-or-march [| start date]")
		return
	}

	startDay, err1 := strconv.Atoi(parts[2])
	endDay, err2 := strconv.Atoi(parts[3])
	if err1 != nil || err2 != nil {
		h.send(message.Chat.ID, "❌ Start and end day must be numbers.")
		return
	}

	mode := service.RollingFixed
	horizon := 0
	if strings.EqualFold(parts[4], "march") {
		mode = service.RollingUntilMarch
	} else {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			h.send(message.Chat.ID, "❌ Give a month count or \"march\".")
			return
		}
		horizon = n
	}

	var newStarter *time.Time
	if len(parts) > 5 && parts[5] != "" {
		clip, err := dates.ParseDate(parts[5])
		if err != nil {
			h.send(message.Chat.ID, "❌ "+err.Error())
			return
		}
		newStarter = &clip
	}

	result, err := h.schedule.ApplyRolling(parts[0], parts[1], startDay, endDay, mode, horizon, newStarter)
	if err != nil {
		h.logger.WithError(err).Error("Rolling application failed")
		h.send(message.Chat.ID, "❌ Something went wrong applying the rolling pattern.")
		return
	}
	h.send(message.Chat.ID, h.schedule.FormatResult(result))
}

func (h *Handler) showGrids(message *tgbotapi.Message) {
	names, err := h.sheets.GridNames()
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	if len(names) == 0 {
		h.send(message.Chat.ID, "📭 No month grids yet. Use /creategrids to make some.")
		return
	}
	h.send(message.Chat.ID, "🗂 Month grids:\n• "+strings.Join(names, "\n• "))
}

// createGrids takes a comma-separated month selection:
// /creategrids March 2025, April 2025
func (h *Handler) createGrids(message *tgbotapi.Message, args string) {
	if !h.isAdmin(message) {
		return
	}

	months := []dates.MonthYear{}
	for _, part := range strings.Split(args, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		my, err := dates.ParseMonthYear(part)
		if err != nil {
			h.send(message.Chat.ID, "❌ "+err.Error())
			return
		}
		months = append(months, my)
	}
	if len(months) == 0 {
		h.send(message.Chat.ID, "Usage: /creategrids March 2025, April 2025")
		return
	}

	result, err := h.sheets.CreateMonths(months)
	if err != nil {
		h.logger.WithError(err).Error("Grid creation failed")
		h.send(message.Chat.ID, "❌ Something went wrong creating the grids.")
		return
	}
	h.send(message.Chat.ID, "✅ "+result.Message)
}

func (h *Handler) showRota(message *tgbotapi.Message, args string) {
	my, err := dates.ParseMonthYear(args)
	if err != nil {
		h.send(message.Chat.ID, "Usage: /rota March 2025")
		return
	}

	text, err := h.sheets.RenderMonth(my)
	if err != nil {
		h.send(message.Chat.ID, "❌ "+err.Error())
		return
	}
	h.send(message.Chat.ID, text)
}

func (h *Handler) exportWorkbook(message *tgbotapi.Message) {
	if err := h.sheets.Flush(); err != nil {
		h.logger.WithError(err).Error("Failed to flush workbook before export")
		h.send(message.Chat.ID, "❌ Could not prepare the workbook file.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FilePath(h.config.WorkbookPath))
	if _, err := h.client.Bot.Send(doc); err != nil {
		h.logger.WithError(err).Error("Failed to send workbook")
		h.send(message.Chat.ID, "❌ Could not send the workbook file.")
	}
}
