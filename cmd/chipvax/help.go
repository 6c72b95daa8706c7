package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/chipvax/internal/config"
)

const usageLine = "chipvax <username> <password> <date> <manufacturer> <vaccine-name> <batch-number> <file>"

func printHelp(w io.Writer) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80")).
		Bold(true).
		Render("C H I P V A X")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Bulk vaccination records for microchipped animals in the CRSZ registry.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	args := []struct{ name, desc string }{
		{"username", "registry login, e.g. SK12345 (user id is the login without its prefix)"},
		{"password", "registry password, or - to be prompted"},
		{"date", "vaccination date, YYYY-MM-DD (valid for one year)"},
		{"manufacturer", "vaccine manufacturer"},
		{"vaccine-name", "vaccine name"},
		{"batch-number", "vaccine batch number"},
		{"file", "chip numbers, one per line; a leading Microchip header is skipped"},
	}
	env := []struct{ name, desc string }{
		{config.EnvAPIURL, "registry URL (default https://www.crsz.sk)"},
		{config.EnvTimeout, "HTTP timeout (default 30s)"},
		{config.EnvLogLevel, "debug, info, warn or error"},
		{config.EnvLogFormat, "text or json"},
		{config.EnvUI, "plain or tui (interactive progress)"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n  Usage:\n    %s\n\n  Arguments:\n", title, tagline, cmdStyle.Render(usageLine))
	for _, a := range args {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-14s", a.name)), descStyle.Render(a.desc))
	}
	fmt.Fprintf(w, "\n  Environment (also read from .env):\n")
	for _, e := range env {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Fprintf(w, "\n  Other commands:\n")
	fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", "chipvax --version")), descStyle.Render("Show version"))
	fmt.Fprintf(w, "    %s  %s\n\n", cmdStyle.Render(fmt.Sprintf("%-20s", "chipvax help")), descStyle.Render("You are here"))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s\n       chipvax help\n", usageLine)
}
