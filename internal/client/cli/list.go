package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

func (a *App) list(ctx context.Context) {
	vm := a.homeVM()
	a.renderList(ctx, vm.Load)
}

// filter prompts for the filter fields and re-fetches. Empty answers
// leave a dimension unconstrained.
func (a *App) filter(ctx context.Context) {
	kind, err := GetOptionalText(a.reader, "Kind (LOST or FOUND)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	category, err := GetOptionalText(a.reader, "Category "+categoryHint(), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	status, err := GetOptionalText(a.reader, "Status (ACTIVE or RESOLVED)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	location, err := GetOptionalText(a.reader, "Location", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.homeVM()
	filter := models.ReportFilter{
		Kind:     models.ReportKind(strings.ToUpper(kind)),
		Category: models.Category(strings.ToUpper(category)),
		Status:   models.ReportStatus(strings.ToUpper(status)),
		Location: location,
		Search:   vm.Filter().Search,
	}
	a.renderList(ctx, func() { vm.SetFilter(filter) })
}

func (a *App) search(ctx context.Context) {
	query, err := GetSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.homeVM()
	a.renderList(ctx, func() { vm.Search(query) })
}

func (a *App) renderList(ctx context.Context, trigger func()) {
	vm := a.homeVM()
	res := runAndWait(ctx, vm.ListState(), trigger)
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	reports, _ := res.Data()
	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports found")
		return
	}
	for _, r := range reports {
		fmt.Fprintln(a.out, formatReportRow(r))
	}
}
