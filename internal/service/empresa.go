package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/model"
)

// EmpresaService maps the /empresas resource collection.
type EmpresaService struct {
	client *apiclient.Client
}

// NewEmpresaService creates a new EmpresaService.
func NewEmpresaService(client *apiclient.Client) *EmpresaService {
	return &EmpresaService{client: client}
}

// List returns one page of empresas, optionally filtered by name search.
func (s *EmpresaService) List(ctx context.Context, pageNum, size int, search string) (model.Page[model.Empresa], error) {
	page, err := apiclient.Get[model.Page[model.Empresa]](ctx, s.client, "/empresas", apiclient.Query{
		"page":   strconv.Itoa(pageNum),
		"size":   strconv.Itoa(size),
		"search": search,
	})
	if err != nil {
		return model.Page[model.Empresa]{}, err
	}
	page.Normalize()
	return page, nil
}

// Get fetches a single empresa by id.
func (s *EmpresaService) Get(ctx context.Context, id int64) (model.Empresa, error) {
	return apiclient.Get[model.Empresa](ctx, s.client, fmt.Sprintf("/empresas/%d", id), nil)
}

// Create creates an empresa.
func (s *EmpresaService) Create(ctx context.Context, req model.EmpresaRequest) (model.Empresa, error) {
	return apiclient.Post[model.Empresa](ctx, s.client, "/empresas", req)
}

// Update replaces an empresa.
func (s *EmpresaService) Update(ctx context.Context, id int64, req model.EmpresaRequest) (model.Empresa, error) {
	return apiclient.Put[model.Empresa](ctx, s.client, fmt.Sprintf("/empresas/%d", id), req)
}

// Delete removes an empresa.
func (s *EmpresaService) Delete(ctx context.Context, id int64) error {
	_, err := apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/empresas/%d", id), nil)
	return err
}

// Reclutadores returns one page of the recruiters attached to an empresa.
func (s *EmpresaService) Reclutadores(ctx context.Context, id int64, pageNum, size int) (model.Page[model.Reclutador], error) {
	page, err := apiclient.Get[model.Page[model.Reclutador]](ctx, s.client, fmt.Sprintf("/empresas/%d/reclutadores", id), apiclient.Query{
		"page": strconv.Itoa(pageNum),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return model.Page[model.Reclutador]{}, err
	}
	page.Normalize()
	return page, nil
}

// Candidaturas returns one page of the candidaturas filed against an empresa.
func (s *EmpresaService) Candidaturas(ctx context.Context, id int64, pageNum, size int) (model.Page[model.Candidatura], error) {
	page, err := apiclient.Get[model.Page[model.Candidatura]](ctx, s.client, fmt.Sprintf("/empresas/%d/candidaturas", id), apiclient.Query{
		"page": strconv.Itoa(pageNum),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return model.Page[model.Candidatura]{}, err
	}
	page.Normalize()
	return page, nil
}
