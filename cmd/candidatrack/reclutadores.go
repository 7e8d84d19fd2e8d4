package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/candidatrack/candidatrack-go/internal/service"
)

func (a *app) cmdReclutadores(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("reclutadores: expected list, asociar or desasociar")
	}

	switch args[0] {
	case "list":
		return a.reclutadoresList(ctx, args[1:])
	case "asociar":
		return a.reclutadoresAssociate(ctx, args[1:], true)
	case "desasociar":
		return a.reclutadoresAssociate(ctx, args[1:], false)
	default:
		return fmt.Errorf("reclutadores: unknown subcommand %q", args[0])
	}
}

func (a *app) reclutadoresList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reclutadores list", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	search := fs.String("search", "", "name filter")
	empresaID := fs.Int64("empresa", 0, "filter by empresa id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.reclutadores.List(ctx, service.ListReclutadoresParams{
		Page:      *page,
		Size:      *size,
		Search:    *search,
		EmpresaID: *empresaID,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tEMPRESA")
	for _, r := range result.Content {
		empresa := ""
		if r.Empresa != nil {
			empresa = r.Empresa.Nombre
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Nombre, r.Email, empresa)
	}
	w.Flush()

	fmt.Printf("page %d/%d, %d total\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) reclutadoresAssociate(ctx context.Context, args []string, associate bool) error {
	if len(args) != 2 {
		return fmt.Errorf("reclutadores: expected <reclutador-id> <candidatura-id>")
	}
	rid, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reclutador id %q", args[0])
	}
	cid, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid candidatura id %q", args[1])
	}

	if associate {
		if err := a.reclutadores.AssociateCandidatura(ctx, rid, cid); err != nil {
			return err
		}
		fmt.Printf("linked candidatura #%d to reclutador #%d\n", cid, rid)
		return nil
	}

	if err := a.reclutadores.DissociateCandidatura(ctx, rid, cid); err != nil {
		return err
	}
	fmt.Printf("unlinked candidatura #%d from reclutador #%d\n", cid, rid)
	return nil
}
