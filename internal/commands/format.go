package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-mud-survival/internal/game"
)

// FormatInventoryItems renders one line per carried item, annotating how it
// is being carried and, for liquid containers, how full it is.
func FormatInventoryItems(actor *game.Living) []string {
	var lines []string
	for _, oi := range actor.Inventory().Objs {
		lines = append(lines, formatItemLine(actor, oi))
	}
	return lines
}

func formatItemLine(actor *game.Living, oi *game.ItemInstance) string {
	name := oi.Def().ShortDesc

	var notes []string
	if oi.Held() {
		notes = append(notes, fmt.Sprintf("held in %s", actor.Held.DisplayLine(oi)))
	}
	if oi.Equipped() {
		notes = append(notes, fmt.Sprintf("worn on %s", oi.EquipSlot))
	}
	if oi.Def().HasFlag(game.ItemFlagLiquidContainer) {
		notes = append(notes, oi.FillState())
	}
	if oi.Def().HasFlag(game.ItemFlagFood) && oi.Def().Portions > 1 {
		notes = append(notes, fmt.Sprintf("%d portions left", oi.PortionsLeft))
	}
	if oi.On {
		notes = append(notes, "lit")
	}

	if len(notes) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(notes, ", "))
}

// --- Box rendering ---

func renderBox(sections []game.StatSection, width int) string {
	var lines []string
	lines = append(lines, boxBorder(width))
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, boxBorder(width))
		}
		if section.Header != "" {
			lines = append(lines, boxLine(section.Header, width))
		}
		for _, line := range section.Lines {
			text := line.Value
			if line.Label != "" {
				text = fmt.Sprintf("%s: %s", line.Label, line.Value)
			}
			if line.Center {
				lines = append(lines, boxLineCenter(text, width))
			} else {
				lines = append(lines, boxLine(text, width))
			}
		}
	}
	lines = append(lines, boxBorder(width))
	return strings.Join(lines, "\n")
}

func boxBorder(width int) string {
	return "+" + strings.Repeat("-", width-2) + "+"
}

func boxLine(text string, width int) string {
	inner := width - 4
	if len(text) > inner {
		text = text[:inner]
	}
	return fmt.Sprintf("| %-*s |", inner, text)
}

func boxLineCenter(text string, width int) string {
	inner := width - 4
	if len(text) > inner {
		text = text[:inner]
	}
	pad := (inner - len(text)) / 2
	return fmt.Sprintf("| %*s%-*s |", pad+len(text), text, inner-pad-len(text), "")
}
