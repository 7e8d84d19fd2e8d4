package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/candidatrack/candidatrack-go/internal/model"
	"github.com/candidatrack/candidatrack-go/internal/service"
)

func (a *app) cmdCandidaturas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("candidaturas: expected list, get, create, estado or delete")
	}

	switch args[0] {
	case "list":
		return a.candidaturasList(ctx, args[1:])
	case "get":
		return a.candidaturasGet(ctx, args[1:])
	case "create":
		return a.candidaturasCreate(ctx, args[1:])
	case "estado":
		return a.candidaturasEstado(ctx, args[1:])
	case "delete":
		return a.candidaturasDelete(ctx, args[1:])
	default:
		return fmt.Errorf("candidaturas: unknown subcommand %q", args[0])
	}
}

func (a *app) candidaturasList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("candidaturas list", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	estado := fs.String("estado", "", "filter by estado")
	q := fs.String("q", "", "free-text filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		result model.Page[model.Candidatura]
		err    error
	)
	if *q != "" && *estado == "" {
		result, err = a.candidaturas.Search(ctx, *q, *page, *size)
	} else {
		result, err = a.candidaturas.List(ctx, service.ListCandidaturasParams{
			Page:   *page,
			Size:   *size,
			Estado: model.Estado(*estado),
			Q:      *q,
		})
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUESTO\tESTADO\tFECHA\tEMPRESA")
	for _, c := range result.Content {
		empresa := ""
		if c.Empresa != nil {
			empresa = c.Empresa.Nombre
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Puesto, c.Estado, c.Fecha, empresa)
	}
	w.Flush()

	fmt.Printf("page %d/%d, %d total\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) candidaturasGet(ctx context.Context, args []string) error {
	id, err := parseID(args, "candidaturas get")
	if err != nil {
		return err
	}

	c, err := a.candidaturas.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d %s [%s]\n", c.ID, c.Puesto, c.Estado)
	if c.Empresa != nil {
		fmt.Printf("empresa: %s\n", c.Empresa.Nombre)
	}
	if c.Fecha != "" {
		fmt.Printf("fecha: %s\n", c.Fecha)
	}
	if c.Descripcion != "" {
		fmt.Printf("descripcion: %s\n", c.Descripcion)
	}
	if c.Notas != "" {
		fmt.Printf("notas: %s\n", c.Notas)
	}

	count, err := a.preguntas.Count(ctx, c.ID)
	if err == nil && count > 0 {
		fmt.Printf("preguntas: %d\n", count)
	}
	return nil
}

func (a *app) candidaturasCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("candidaturas create", flag.ContinueOnError)
	puesto := fs.String("puesto", "", "position title")
	estado := fs.String("estado", string(model.EstadoPendiente), "initial estado")
	fecha := fs.String("fecha", "", "application date (YYYY-MM-DD)")
	notas := fs.String("notas", "", "free-form notes")
	empresaID := fs.Int64("empresa", 0, "empresa id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *puesto == "" {
		return fmt.Errorf("candidaturas create: -puesto is required")
	}

	c, err := a.candidaturas.Create(ctx, model.CandidaturaRequest{
		Puesto:    *puesto,
		Estado:    model.Estado(*estado),
		Fecha:     *fecha,
		Notas:     *notas,
		EmpresaID: *empresaID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created candidatura #%d\n", c.ID)
	return nil
}

func (a *app) candidaturasEstado(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("candidaturas estado: expected <id> <estado>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("candidaturas estado: invalid id %q", args[0])
	}

	c, err := a.candidaturas.UpdateEstado(ctx, id, model.Estado(args[1]))
	if err != nil {
		return err
	}

	fmt.Printf("candidatura #%d is now %s\n", c.ID, c.Estado)
	return nil
}

func (a *app) candidaturasDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("candidaturas delete: expected one or more ids")
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("candidaturas delete: invalid id %q", arg)
		}
		ids = append(ids, id)
	}

	if len(ids) == 1 {
		if err := a.candidaturas.Delete(ctx, ids[0]); err != nil {
			return err
		}
	} else if err := a.candidaturas.DeleteBatch(ctx, ids); err != nil {
		return err
	}

	fmt.Printf("deleted %d candidatura(s)\n", len(ids))
	return nil
}

func parseID(args []string, cmd string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected exactly one id", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid id %q", cmd, args[0])
	}
	return id, nil
}
