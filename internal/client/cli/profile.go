package cli

import (
	"context"
	"fmt"

	"github.com/stis-apps/titiktemu/internal/client/models"
)

func (a *App) profile(ctx context.Context) {
	vm := a.vms.Profile()
	defer vm.Close()

	res := runAndWait(ctx, vm.ProfileState(), vm.Load)
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return
	}
	user, _ := res.Data()
	fmt.Fprintf(a.out, "Username:  %s\n", user.Username)
	fmt.Fprintf(a.out, "Full name: %s\n", user.FullName)
	fmt.Fprintf(a.out, "Email:     %s\n", user.Email)
	fmt.Fprintf(a.out, "Role:      %s\n", user.Role)
	if user.ExternalID != "" {
		fmt.Fprintf(a.out, "ID number: %s\n", user.ExternalID)
	}
	fmt.Fprintf(a.out, "Phone:     %s\n", user.Phone)
}

// editProfile prompts for each field; an empty answer keeps the current
// value.
func (a *App) editProfile(ctx context.Context) {
	req := models.UpdateProfileRequest{}
	fullName, err := GetOptionalText(a.reader, "New full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.FullName = fullName
	email, err := GetOptionalText(a.reader, "New email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Email = email
	phone, err := GetOptionalText(a.reader, "New phone", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	req.Phone = phone

	vm := a.vms.Profile()
	defer vm.Close()

	res := runAndWait(ctx, vm.UpdateState(), func() { vm.Update(req) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
	}
}

func (a *App) changePassword(ctx context.Context) {
	oldPassword, err := GetPassword(a.out, "Current password: ")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	newPassword, err := GetPassword(a.out, "New password: ")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	vm := a.vms.Profile()
	defer vm.Close()

	res := runAndWait(ctx, vm.PasswordState(), func() { vm.ChangePassword(oldPassword, newPassword) })
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
	}
}

func (a *App) deleteAccount(ctx context.Context) {
	confirm, err := GetSimpleText(a.reader, "This permanently deletes your account and reports. Type 'delete' to confirm", a.out)
	if err != nil || confirm != "delete" {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	vm := a.vms.Profile()
	defer vm.Close()

	res := runAndWait(ctx, vm.DeleteState(), vm.DeleteAccount)
	a.pump(vm)

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
	}
}
