package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)

	// Staff directory
	case "staff":
		h.showStaff(message)
	case "addstaff":
		h.addStaff(message, args)
	case "removestaff":
		h.removeStaff(message, args)

	// Shift catalog
	case "shifts":
		h.showShifts(message)
	case "addshift":
		h.addShift(message, args)
	case "removeshift":
		h.removeShift(message, args)
	case "hideshift":
		h.hideShift(message, args)
	case "unhideshift":
		h.unhideShift(message, args)

	// Pattern application
	case "pattern":
		h.applyPattern(message, args)
	case "rolling":
		h.applyRolling(message, args)

	// Absences
	case "absence":
		h.logAbsence(message, args)
	case "absences":
		h.showAbsences(message, args)

	// Grids
	case "grids":
		h.showGrids(message)
	case "creategrids":
		h.createGrids(message, args)
	case "rota":
		h.showRota(message, args)
	case "export":
		h.exportWorkbook(message)

	// Leave allocations
	case "allowance":
		h.setAllowance(message, args)
	case "allowanceyear":
		h.setAllowanceForYear(message, args)

	default:
		h.send(message.Chat.ID, "Unknown command. Use /help to see what I understand.")
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.send(message.Chat.ID,
		"👋 Rota manager at your service.\n\n"+
			"I keep monthly rota grids: one row per staff member, one column per day, "+
			"with hours, leave, sick and training totals kept up to date.\n\n"+
			"Use /help for the command list.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.send(message.Chat.ID,
		`📖 Commands (arguments separated by "|"):

Staff
/staff — merged staff directory
/addstaff Name | Role
/removestaff Name

Shifts
/shifts — resolved catalog
/addshift CODE | Label | Hours | #Color
/removeshift CODE
/hideshift CODE — hide a built-in
/unhideshift CODE

Rota
/pattern Name | EARLY,EARLY,OFF | 2025-03-01 | 2025-03-31
/rolling Name | EARLY,LATE,OFF | startDay | endDay | months-or-march [| start date]
/rota March 2025 — totals for a month
/grids — list month grids
/creategrids March 2025, April 2025
/export — send the workbook file

Absences
/absence Name | Annual Leave | 2025-03-30 | 2025-04-02 [| reason]
/absences [Name]

Leave
/allowance Name | days
/allowanceyear Name | year | days`)
}
