package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Type 'help' for commands")

	for {
		fmt.Fprintf(a.out, "titiktemu %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "list":
			a.list(ctx)
		case "filter":
			a.filter(ctx)
		case "search":
			a.search(ctx)
		case "show":
			a.show(ctx, args)
		case "create":
			a.create(ctx)
		case "update":
			a.update(ctx, args)
		case "resolve":
			a.resolve(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "profile":
			a.profile(ctx)
		case "editprofile":
			a.editProfile(ctx)
		case "password":
			a.changePassword(ctx)
		case "deleteaccount":
			a.deleteAccount(ctx)
		case "logout":
			a.logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list, filter, search, show <id>, create, update <id>, resolve <id>, delete <id>, profile, editprofile, password, deleteaccount, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, register, list, filter, search, show <id>, exit")
	}
}
