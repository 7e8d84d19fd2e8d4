package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/candidatrack/candidatrack-go/internal/token"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		return fmt.Errorf("login: -username is required")
	}
	if *password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		*password = strings.TrimSpace(line)
	}

	profile, err := a.auth.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", profile.Username, profile.Role)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("logged out")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	snap := a.store.Snapshot()
	if !snap.Authenticated() {
		return fmt.Errorf("not logged in")
	}

	profile, err := a.auth.Me(ctx)
	if err != nil {
		// Fall back to the persisted profile when the backend is down.
		if snap.User == nil {
			return err
		}
		profile = *snap.User
	}

	fmt.Printf("%s <%s> role=%s\n", profile.Username, profile.Email, profile.Role)
	if claims, err := token.Inspect(snap.Token); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Printf("session expires %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
