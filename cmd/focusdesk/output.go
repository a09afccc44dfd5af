package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"focusdesk/internal/bridge"
	backupdto "focusdesk/internal/modules/backup/dto"
	documentdto "focusdesk/internal/modules/document/dto"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func addVersion(topLevel *cobra.Command) {
	shortened := false
	output := "json"
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print focusdesk version.",
		Run: func(cmd *cobra.Command, _ []string) {
			resp := goversion.FuncWithOutput(shortened, version, commit, date, output)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")
	topLevel.AddCommand(cmd)
}

func success(cmd *cobra.Command, msg string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), green("✓"), msg)
}

func printDocuments(w io.Writer, docs []documentdto.DocumentOutput) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("NAME"), bold("STATE"), bold("SIZE"), bold("MODIFIED"), bold("PATH"))
	for _, d := range docs {
		if !d.Exists {
			tbl.AddRow(d.Name, faint("default"), "-", "-", faint(d.Path))
			continue
		}
		tbl.AddRow(d.Name, green("stored"), d.Size, d.ModifiedAt.Format(time.DateTime), d.Path)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printBackups(w io.Writer, backups []backupdto.BackupOutput) {
	if len(backups) == 0 {
		_, _ = fmt.Fprintln(w, faint("no backups"))
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold("NAME"), bold("CREATED"), bold("DOCUMENTS"), bold("FOLDER"))
	for _, b := range backups {
		tbl.AddRow(b.Name, b.CreatedAt.Format(time.DateTime), len(b.Documents), b.Folder)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printMenu(w io.Writer, items []bridge.MenuItem) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, item := range items {
		if item.Separator {
			tbl.AddRow(faint("──────"), "")
			continue
		}
		tbl.AddRow(item.ID, item.Label)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func printOutcome(w io.Writer, event string, out bridge.TrayReply) {
	switch {
	case out.Quit:
		_, _ = fmt.Fprintln(w, green("✓"), "shell quit")
	case out.Skipped:
		_, _ = fmt.Fprintln(w, faint(event+": main window unavailable, nothing done"))
	case out.Ignored:
		_, _ = fmt.Fprintln(w, faint(event+": no action"))
	default:
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold("shown"), out.Shown)
		tbl.AddRow(bold("hidden"), out.Hidden)
		if out.Published != "" {
			tbl.AddRow(bold("event"), out.Published)
		}
		_, _ = fmt.Fprintln(w, tbl)
	}
}
