package cli

import (
	"context"
	"fmt"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

func (a *App) login(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out, "Password: ")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.vms.Auth()
	defer vm.Close()

	res := runAndWait(ctx, vm.LoginState(), func() { vm.Login(userName, password) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	resp, _ := res.Data()
	fmt.Fprintf(a.out, "Logged in as %s\n", resp.Username)
}

func (a *App) register(ctx context.Context) {
	req := models.RegisterRequest{}
	fields := []struct {
		label    string
		optional bool
		dst      *string
	}{
		{"Username", false, &req.Username},
		{"Email", false, &req.Email},
		{"Full name", false, &req.FullName},
		{"Role (e.g. STUDENT, STAFF)", false, &req.Role},
		{"Student/staff ID", true, &req.ExternalID},
		{"Phone", true, &req.Phone},
	}
	for _, f := range fields {
		var v string
		var err error
		if f.optional {
			v, err = GetOptionalText(a.reader, f.label, a.out)
		} else {
			v, err = GetSimpleText(a.reader, f.label, a.out)
		}
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		*f.dst = v
	}

	password, err := GetPassword(a.out, "Password: ")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Password = password

	vm := a.vms.Auth()
	defer vm.Close()

	res := runAndWait(ctx, vm.RegisterState(), func() { vm.Register(req) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	resp, _ := res.Data()
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", resp.Username)
}

func (a *App) logout(ctx context.Context) {
	vm := a.vms.Profile()
	defer vm.Close()

	if err := vm.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.pump(vm)
	fmt.Fprintln(a.out, "Logged out")
}
