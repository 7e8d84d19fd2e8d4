package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/candidatrack/candidatrack-go/internal/model"
)

func (a *app) cmdPreguntas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("preguntas: expected list, add or count")
	}

	switch args[0] {
	case "list":
		return a.preguntasList(ctx, args[1:])
	case "add":
		return a.preguntasAdd(ctx, args[1:])
	case "count":
		return a.preguntasCount(ctx, args[1:])
	default:
		return fmt.Errorf("preguntas: unknown subcommand %q", args[0])
	}
}

func (a *app) preguntasList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preguntas list", flag.ContinueOnError)
	candidaturaID := fs.Int64("candidatura", 0, "candidatura id")
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *candidaturaID == 0 {
		return fmt.Errorf("preguntas list: -candidatura is required")
	}

	result, err := a.preguntas.ListByCandidatura(ctx, *candidaturaID, *page, *size)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPREGUNTA\tRESPUESTA")
	for _, p := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Texto, p.Respuesta)
	}
	w.Flush()

	fmt.Printf("page %d/%d, %d total\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) preguntasAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preguntas add", flag.ContinueOnError)
	candidaturaID := fs.Int64("candidatura", 0, "candidatura id")
	texto := fs.String("texto", "", "question text")
	respuesta := fs.String("respuesta", "", "answer, if any")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *candidaturaID == 0 || *texto == "" {
		return fmt.Errorf("preguntas add: -candidatura and -texto are required")
	}

	p, err := a.preguntas.Create(ctx, model.PreguntaRequest{
		Texto:         *texto,
		Respuesta:     *respuesta,
		CandidaturaID: *candidaturaID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created pregunta #%d\n", p.ID)
	return nil
}

func (a *app) preguntasCount(ctx context.Context, args []string) error {
	id, err := parseID(args, "preguntas count")
	if err != nil {
		return err
	}

	count, err := a.preguntas.Count(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", count)
	return nil
}
