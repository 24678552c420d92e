// Package analytics implementa el agregador de lectura: listados de ventas
// enriquecidos, ventas filtradas con paginación y analítica de clientes.
// Trabaja siempre por escaneo completo de la colección de ventas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
)

// Formato de fecha para mostrar en los listados: "January 02, 2006 (03:04 PM)".
const displayDateLayout = "January 02, 2006 (03:04 PM)"

// pageSize resultados por página del listado filtrado.
const pageSize = 20

// UseCase agregador de analítica.
type UseCase struct {
	saleRepo     repository.SaleRepository
	userRepo     repository.UserRepository
	customerRepo repository.CustomerProfileRepository
}

// NewUseCase construye el agregador.
func NewUseCase(saleRepo repository.SaleRepository, userRepo repository.UserRepository, customerRepo repository.CustomerProfileRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo, userRepo: userRepo, customerRepo: customerRepo}
}

// usersNameMap precarga todos los usuarios para resolver staff_id -> nombre.
// Un fallo de carga no aborta el listado: se resuelve todo como Unknown.
func (uc *UseCase) usersNameMap(ctx context.Context) map[string]string {
	m := make(map[string]string)
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudieron cargar los usuarios para resolver staff_name")
		return m
	}
	for _, u := range users {
		m[u.ID] = u.DisplayName()
	}
	return m
}

func staffName(usersMap map[string]string, staffID string) string {
	if name, ok := usersMap[staffID]; ok {
		return name
	}
	return "Unknown"
}

// itemsDisplay resume las líneas como "nombre x2, nombre x1".
func itemsDisplay(items []entity.SaleItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s x%d", it.Name, it.Qty())
	}
	return strings.Join(parts, ", ")
}

// datedView es una vista con su fecha parseada, para ordenar.
type datedView struct {
	view dto.SaleView
	ts   time.Time
}

// toView construye la vista de una venta. Cuando la fecha no es parseable la
// fecha de orden es el tiempo cero; unknownDate decide si se muestra
// "Unknown" o la cadena cruda almacenada.
func toView(s entity.Sale, usersMap map[string]string, unknownDate bool) datedView {
	v := dto.SaleView{
		ID:           s.ID,
		CustomerName: s.CustomerName,
		Items:        s.Items,
		Total:        s.Total,
		Date:         s.Date,
		StaffID:      s.StaffID,
		StaffName:    staffName(usersMap, s.StaffID),
		ItemsDisplay: itemsDisplay(s.Items),
	}
	ts, ok := s.Time()
	if ok {
		v.Date = ts.Format(displayDateLayout)
	} else if unknownDate {
		v.Date = "Unknown"
	}
	return datedView{view: v, ts: ts}
}

// sortByDateDesc ordena las vistas por fecha descendente, estable: las de
// fecha ilegible (tiempo cero) quedan al final.
func sortByDateDesc(views []datedView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].ts.After(views[j].ts)
	})
}

// List devuelve todas las ventas enriquecidas, más recientes primero.
func (uc *UseCase) List(ctx context.Context) (*dto.SalesListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	usersMap := uc.usersNameMap(ctx)

	views := make([]datedView, 0, len(sales))
	for _, s := range sales {
		views = append(views, toView(s, usersMap, false))
	}
	sortByDateDesc(views)

	out := make([]dto.SaleView, len(views))
	for i, v := range views {
		out[i] = v.view
	}
	return &dto.SalesListResponse{Success: true, Sales: out}, nil
}

// Recent devuelve las cinco ventas más recientes para el dashboard.
func (uc *UseCase) Recent(ctx context.Context) (*dto.SalesListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	usersMap := uc.usersNameMap(ctx)

	views := make([]datedView, 0, len(sales))
	for _, s := range sales {
		views = append(views, toView(s, usersMap, true))
	}
	sortByDateDesc(views)
	if len(views) > 5 {
		views = views[:5]
	}

	out := make([]dto.SaleView, len(views))
	for i, v := range views {
		out[i] = v.view
	}
	return &dto.SalesListResponse{Success: true, Sales: out}, nil
}

// matchesDateFilter aplica el filtro de fecha sobre la fecha calendario de la
// venta. Un rango custom con fechas mal formadas no filtra nada.
func matchesDateFilter(f dto.SalesFilter, ts time.Time) bool {
	if f.DateFilter == "" || f.DateFilter == "all" {
		return true
	}
	today := dateOnly(time.Now())
	saleDate := dateOnly(ts)

	switch f.DateFilter {
	case "today":
		return saleDate.Equal(today)
	case "yesterday":
		return saleDate.Equal(today.AddDate(0, 0, -1))
	case "week":
		return !saleDate.Before(today.AddDate(0, 0, -7))
	case "month":
		return !saleDate.Before(today.AddDate(0, 0, -30))
	case "custom":
		if f.StartDate == "" || f.EndDate == "" {
			return true
		}
		start, err1 := time.Parse("2006-01-02", f.StartDate)
		end, err2 := time.Parse("2006-01-02", f.EndDate)
		if err1 != nil || err2 != nil {
			return true
		}
		return !saleDate.Before(start) && !saleDate.After(end)
	}
	return true
}

// matchesAmountFilter aplica el filtro de rango de importe. Los tramos son
// inclusivos en ambos extremos, por lo que los bordes caen en dos tramos.
func matchesAmountFilter(filter string, total float64) bool {
	switch filter {
	case "0-1000":
		return total >= 0 && total <= 1000
	case "1000-5000":
		return total >= 1000 && total <= 5000
	case "5000-10000":
		return total >= 5000 && total <= 10000
	case "10000+":
		return total >= 10000
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Filtered devuelve una página de ventas filtradas por fecha, cliente e
// importe. El resumen se calcula sobre el conjunto filtrado completo, no
// sobre la página.
func (uc *UseCase) Filtered(ctx context.Context, f dto.SalesFilter) (*dto.FilteredSalesResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	usersMap := uc.usersNameMap(ctx)

	views := make([]datedView, 0, len(sales))
	for _, s := range sales {
		v := toView(s, usersMap, true)

		if !matchesDateFilter(f, v.ts) {
			continue
		}
		if f.CustomerFilter != "" {
			name := s.CustomerName
			if name == "" {
				name = entity.WalkInCustomer
			}
			if name != f.CustomerFilter {
				continue
			}
		}
		if f.AmountFilter != "" && !matchesAmountFilter(f.AmountFilter, s.Total) {
			continue
		}
		views = append(views, v)
	}
	sortByDateDesc(views)

	var totalAmount float64
	for _, v := range views {
		totalAmount += v.view.Total
	}
	totalResults := len(views)
	var averageOrder float64
	if totalResults > 0 {
		averageOrder = totalAmount / float64(totalResults)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start > totalResults {
		start = totalResults
	}
	end := start + pageSize
	if end > totalResults {
		end = totalResults
	}

	out := make([]dto.SaleView, 0, end-start)
	for _, v := range views[start:end] {
		out = append(out, v.view)
	}
	return &dto.FilteredSalesResponse{
		Success:    true,
		Sales:      out,
		Total:      totalResults,
		Page:       page,
		Limit:      pageSize,
		TotalPages: (totalResults + pageSize - 1) / pageSize,
		Summary: dto.SalesSummary{
			TotalSalesAmount:  totalAmount,
			TotalTransactions: totalResults,
			AverageOrder:      averageOrder,
		},
	}, nil
}
