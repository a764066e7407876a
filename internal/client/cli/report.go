package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

func (a *App) show(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "show")
	if !ok {
		return
	}

	vm := a.vms.Detail()
	defer vm.Close()

	res := runAndWait(ctx, vm.ReportState(), func() { vm.Load(id) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	report, _ := res.Data()
	fmt.Fprint(a.out, formatReport(report))
}

func (a *App) create(ctx context.Context) {
	kind, err := GetSimpleText(a.reader, "Kind (LOST or FOUND)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	category, err := GetSimpleText(a.reader, "Category "+categoryHint(), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	incidentDate, err := GetSimpleText(a.reader, "Incident date (YYYY-MM-DD)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	photoPath, err := GetOptionalText(a.reader, "Photo file path", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.vms.Create()
	defer vm.Close()

	req := models.CreateReportRequest{
		Kind:         models.ReportKind(strings.ToUpper(kind)),
		Title:        title,
		Description:  description,
		Category:     models.Category(strings.ToUpper(category)),
		Location:     location,
		IncidentDate: incidentDate,
	}
	res := runAndWait(ctx, vm.CreateState(), func() { vm.Create(req, photoPath) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	report, _ := res.Data()
	fmt.Fprintf(a.out, "Report #%d created\n", report.ID)
}

// update prompts for each field; an empty answer keeps the server value.
func (a *App) update(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "update")
	if !ok {
		return
	}

	req := models.UpdateReportRequest{}
	title, err := GetOptionalText(a.reader, "New title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Title = title
	description, err := GetOptionalText(a.reader, "New description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Description = description
	category, err := GetOptionalText(a.reader, "New category "+categoryHint(), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Category = models.Category(strings.ToUpper(category))
	location, err := GetOptionalText(a.reader, "New location", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Location = location
	photoPath, err := GetOptionalText(a.reader, "New photo file path", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.vms.Edit()
	defer vm.Close()

	res := runAndWait(ctx, vm.UpdateState(), func() { vm.Update(id, req, photoPath) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	report, _ := res.Data()
	fmt.Fprintf(a.out, "Report #%d updated\n", report.ID)
}

func (a *App) resolve(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "resolve")
	if !ok {
		return
	}

	vm := a.vms.Edit()
	defer vm.Close()

	res := runAndWait(ctx, vm.UpdateState(), func() { vm.Resolve(id) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
	}
}

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "delete")
	if !ok {
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete report #%d? (y/n)", id), a.out)
	if err != nil || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	vm := a.vms.Detail()
	defer vm.Close()

	res := runAndWait(ctx, vm.DeleteState(), func() { vm.Delete(id) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
	}
}
