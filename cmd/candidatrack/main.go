// Command candidatrack is a terminal client for the candidatura
// tracking backend: job applications, the companies behind them,
// recruiters, and interview questions.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/config"
	"github.com/candidatrack/candidatrack-go/internal/service"
	"github.com/candidatrack/candidatrack-go/internal/session"
)

type app struct {
	store        *session.Store
	auth         *service.AuthService
	candidaturas *service.CandidaturaService
	empresas     *service.EmpresaService
	reclutadores *service.ReclutadorService
	preguntas    *service.PreguntaService
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	level := slog.LevelWarn
	if os.Getenv("CANDIDATRACK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := session.New(session.NewFileStorage(cfg.CredentialsFile))
	client, err := apiclient.New(cfg.APIBaseURL, store, apiclient.Options{
		Timeout:   cfg.Timeout,
		RateLimit: cfg.RateLimit,
		OnSessionInvalidated: func() {
			fmt.Fprintln(os.Stderr, "session expired: run 'candidatrack login' to sign in again")
		},
	})
	if err != nil {
		return err
	}

	a := &app{
		store:        store,
		auth:         service.NewAuthService(client, store),
		candidaturas: service.NewCandidaturaService(client),
		empresas:     service.NewEmpresaService(client),
		reclutadores: service.NewReclutadorService(client),
		preguntas:    service.NewPreguntaService(client),
	}

	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	ctx := context.Background()

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "candidaturas":
		return a.cmdCandidaturas(ctx, args[1:])
	case "empresas":
		return a.cmdEmpresas(ctx, args[1:])
	case "reclutadores":
		return a.cmdReclutadores(ctx, args[1:])
	case "preguntas":
		return a.cmdPreguntas(ctx, args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: candidatrack <command> [flags]

commands:
  login          sign in and store the session
  logout         revoke and forget the session
  whoami         show the logged-in user
  candidaturas   list | get | create | estado | delete
  empresas       list | get | create | delete
  reclutadores   list | asociar | desasociar
  preguntas      list | add | count
`)
}
