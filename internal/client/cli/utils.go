package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

func (a *App) parseID(args []string, cmd string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Invalid report id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func categoryHint() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func formatReportRow(r models.Report) string {
	return fmt.Sprintf("#%-4d [%s/%s] %-30s %s", r.ID, r.Kind, r.Status, r.Title, r.Location)
}

func formatReport(r models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report #%d\n", r.ID)
	fmt.Fprintf(&b, "  Kind:        %s\n", r.Kind)
	fmt.Fprintf(&b, "  Status:      %s\n", r.Status)
	fmt.Fprintf(&b, "  Title:       %s\n", r.Title)
	fmt.Fprintf(&b, "  Description: %s\n", r.Description)
	fmt.Fprintf(&b, "  Category:    %s\n", r.Category)
	fmt.Fprintf(&b, "  Location:    %s\n", r.Location)
	fmt.Fprintf(&b, "  Date:        %s\n", r.IncidentDate)
	if r.PhotoURL != "" {
		fmt.Fprintf(&b, "  Photo:       %s\n", r.PhotoURL)
	}
	if r.ReporterName != "" {
		fmt.Fprintf(&b, "  Reported by: %s (%s)\n", r.ReporterName, r.ReporterPhone)
	}
	return b.String()
}
