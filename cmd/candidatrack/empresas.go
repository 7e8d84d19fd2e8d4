package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/candidatrack/candidatrack-go/internal/model"
)

func (a *app) cmdEmpresas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empresas: expected list, get, create or delete")
	}

	switch args[0] {
	case "list":
		return a.empresasList(ctx, args[1:])
	case "get":
		return a.empresasGet(ctx, args[1:])
	case "create":
		return a.empresasCreate(ctx, args[1:])
	case "delete":
		return a.empresasDelete(ctx, args[1:])
	default:
		return fmt.Errorf("empresas: unknown subcommand %q", args[0])
	}
}

func (a *app) empresasList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("empresas list", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	search := fs.String("search", "", "name filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.empresas.List(ctx, *page, *size, *search)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tSECTOR\tUBICACION")
	for _, e := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Nombre, e.Sector, e.Ubicacion)
	}
	w.Flush()

	fmt.Printf("page %d/%d, %d total\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) empresasGet(ctx context.Context, args []string) error {
	id, err := parseID(args, "empresas get")
	if err != nil {
		return err
	}

	e, err := a.empresas.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d %s\n", e.ID, e.Nombre)
	if e.Sector != "" {
		fmt.Printf("sector: %s\n", e.Sector)
	}
	if e.Ubicacion != "" {
		fmt.Printf("ubicacion: %s\n", e.Ubicacion)
	}
	if e.Web != "" {
		fmt.Printf("web: %s\n", e.Web)
	}

	reclutadores, err := a.empresas.Reclutadores(ctx, id, 0, 10)
	if err == nil && len(reclutadores.Content) > 0 {
		fmt.Printf("reclutadores (%d):\n", reclutadores.TotalElements)
		for _, r := range reclutadores.Content {
			fmt.Printf("  #%d %s\n", r.ID, r.Nombre)
		}
	}
	return nil
}

func (a *app) empresasCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("empresas create", flag.ContinueOnError)
	nombre := fs.String("nombre", "", "company name")
	sector := fs.String("sector", "", "business sector")
	ubicacion := fs.String("ubicacion", "", "location")
	web := fs.String("web", "", "website")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nombre == "" {
		return fmt.Errorf("empresas create: -nombre is required")
	}

	e, err := a.empresas.Create(ctx, model.EmpresaRequest{
		Nombre:    *nombre,
		Sector:    *sector,
		Ubicacion: *ubicacion,
		Web:       *web,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created empresa #%d\n", e.ID)
	return nil
}

func (a *app) empresasDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "empresas delete")
	if err != nil {
		return err
	}
	if err := a.empresas.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Printf("deleted empresa #%d\n", id)
	return nil
}
