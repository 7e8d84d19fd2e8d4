package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/candidatrack/candidatrack-go/internal/apiclient"
	"github.com/candidatrack/candidatrack-go/internal/model"
)

// CandidaturaService maps the /candidaturas resource collection.
type CandidaturaService struct {
	client *apiclient.Client
}

// NewCandidaturaService creates a new CandidaturaService.
func NewCandidaturaService(client *apiclient.Client) *CandidaturaService {
	return &CandidaturaService{client: client}
}

// ListCandidaturasParams are the paging and filter knobs for List.
type ListCandidaturasParams struct {
	Page   int
	Size   int
	Estado model.Estado
	Q      string
}

// List returns one page of candidaturas, optionally filtered by estado
// and free text.
func (s *CandidaturaService) List(ctx context.Context, p ListCandidaturasParams) (model.Page[model.Candidatura], error) {
	page, err := apiclient.Get[model.Page[model.Candidatura]](ctx, s.client, "/candidaturas", apiclient.Query{
		"page":   strconv.Itoa(p.Page),
		"size":   strconv.Itoa(p.Size),
		"estado": string(p.Estado),
		"q":      p.Q,
	})
	if err != nil {
		return model.Page[model.Candidatura]{}, err
	}
	page.Normalize()
	return page, nil
}

// Search runs the free-text search endpoint. The envelope shape matches
// List, so callers can switch between them based on whether a filter is
// active.
func (s *CandidaturaService) Search(ctx context.Context, q string, pageNum, size int) (model.Page[model.Candidatura], error) {
	page, err := apiclient.Get[model.Page[model.Candidatura]](ctx, s.client, "/candidaturas/buscar", apiclient.Query{
		"q":    q,
		"page": strconv.Itoa(pageNum),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return model.Page[model.Candidatura]{}, err
	}
	page.Normalize()
	return page, nil
}

// FilterCandidaturasParams are the structured filters for Filter.
// Desde and Hasta bound the application date, formatted YYYY-MM-DD.
type FilterCandidaturasParams struct {
	Page      int
	Size      int
	Estado    model.Estado
	Desde     string
	Hasta     string
	EmpresaID int64
}

// Filter runs the structured filter endpoint.
func (s *CandidaturaService) Filter(ctx context.Context, p FilterCandidaturasParams) (model.Page[model.Candidatura], error) {
	q := apiclient.Query{
		"page":   strconv.Itoa(p.Page),
		"size":   strconv.Itoa(p.Size),
		"estado": string(p.Estado),
		"desde":  p.Desde,
		"hasta":  p.Hasta,
	}
	if p.EmpresaID > 0 {
		q["empresaId"] = strconv.FormatInt(p.EmpresaID, 10)
	}

	page, err := apiclient.Get[model.Page[model.Candidatura]](ctx, s.client, "/candidaturas/filtrar", q)
	if err != nil {
		return model.Page[model.Candidatura]{}, err
	}
	page.Normalize()
	return page, nil
}

// Get fetches a single candidatura by id.
func (s *CandidaturaService) Get(ctx context.Context, id int64) (model.Candidatura, error) {
	return apiclient.Get[model.Candidatura](ctx, s.client, fmt.Sprintf("/candidaturas/%d", id), nil)
}

// Create creates a candidatura.
func (s *CandidaturaService) Create(ctx context.Context, req model.CandidaturaRequest) (model.Candidatura, error) {
	return apiclient.Post[model.Candidatura](ctx, s.client, "/candidaturas", req)
}

// Update replaces a candidatura.
func (s *CandidaturaService) Update(ctx context.Context, id int64, req model.CandidaturaRequest) (model.Candidatura, error) {
	return apiclient.Put[model.Candidatura](ctx, s.client, fmt.Sprintf("/candidaturas/%d", id), req)
}

// Delete removes a candidatura.
func (s *CandidaturaService) Delete(ctx context.Context, id int64) error {
	_, err := apiclient.Delete[struct{}](ctx, s.client, fmt.Sprintf("/candidaturas/%d", id), nil)
	return err
}

// UpdateEstado transitions a candidatura to a new estado. The backend
// takes the target state as a query parameter, not a body.
func (s *CandidaturaService) UpdateEstado(ctx context.Context, id int64, estado model.Estado) (model.Candidatura, error) {
	path := fmt.Sprintf("/candidaturas/%d/estado?estado=%s", id, url.QueryEscape(string(estado)))
	return apiclient.Patch[model.Candidatura](ctx, s.client, path, nil)
}

// DeleteBatch removes several candidaturas in one call.
func (s *CandidaturaService) DeleteBatch(ctx context.Context, ids []int64) error {
	_, err := apiclient.Delete[struct{}](ctx, s.client, "/candidaturas/batch", ids)
	return err
}
