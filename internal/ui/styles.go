package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func L1Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	return style.Sprint(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func L2Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	return style.Sprint(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// Amount colors credits green and debits red
func Amount(text string, negative bool) string {
	if negative {
		return pterm.Red(text)
	}
	return pterm.Green(text)
}
