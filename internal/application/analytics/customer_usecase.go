package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// isoLayout formato ISO-8601 sin zona, equivalente al almacenado en las
// ventas. La fracción se omite cuando es cero.
const isoLayout = "2006-01-02T15:04:05.999999"

func isoString(t time.Time) *string {
	s := t.Format(isoLayout)
	return &s
}

// monthKey clave de mes calendario "2006-01".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// customerAccum acumulador de estadísticas de un cliente durante el escaneo.
type customerAccum struct {
	name          string
	totalSales    int
	totalSpent    float64
	firstPurchase *time.Time
	lastPurchase  *time.Time
	favItems      map[string]int
	favCategories map[string]int
}

func newCustomerAccum(name string) *customerAccum {
	return &customerAccum{
		name:          name,
		favItems:      make(map[string]int),
		favCategories: make(map[string]int),
	}
}

func (a *customerAccum) addSale(s entity.Sale) {
	a.totalSales++
	a.totalSpent += s.Total
	if ts, ok := s.Time(); ok {
		if a.firstPurchase == nil || ts.Before(*a.firstPurchase) {
			t := ts
			a.firstPurchase = &t
		}
		if a.lastPurchase == nil || ts.After(*a.lastPurchase) {
			t := ts
			a.lastPurchase = &t
		}
	}
	for _, it := range s.Items {
		if it.Name != "" {
			a.favItems[it.Name] += it.Qty()
		}
		if it.Category != "" {
			a.favCategories[it.Category] += it.Qty()
		}
	}
}

// demographic devuelve el valor del puntero o "N/A" cuando falta.
func demographic[T any](p *T) any {
	if p == nil {
		return "N/A"
	}
	return *p
}

// optional devuelve el valor del puntero o nil cuando falta.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Roster devuelve el listado de clientes: estadísticas derivadas de las
// ventas fusionadas con el perfil demográfico cuando existe uno con el mismo
// nombre exacto. Los perfiles sin ventas no aparecen. Orden: total gastado
// descendente.
func (uc *UseCase) Roster(ctx context.Context) (*dto.CustomerListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	accums := make(map[string]*customerAccum)
	var order []string
	for _, s := range sales {
		name := s.CustomerName
		if name == "" {
			name = entity.WalkInCustomer
		}
		acc, ok := accums[name]
		if !ok {
			acc = newCustomerAccum(name)
			accums[name] = acc
			order = append(order, name)
		}
		acc.addSale(s)
	}

	profiles, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profileByName := make(map[string]entity.CustomerProfile, len(profiles))
	for _, p := range profiles {
		profileByName[p.Name] = p
	}

	out := make([]dto.CustomerStats, 0, len(order))
	for _, name := range order {
		acc := accums[name]
		row := dto.CustomerStats{
			Name:               acc.name,
			TotalSales:         acc.totalSales,
			TotalSpent:         acc.totalSpent,
			PurchaseCount:      0, // el contador histórico quedó en desuso; se conserva en la respuesta
			FavoriteItems:      acc.favItems,
			FavoriteCategories: acc.favCategories,
			Age:                "N/A",
			Sex:                "N/A",
			Address:            "N/A",
			Occupation:         "N/A",
			Business:           "N/A",
		}
		if acc.firstPurchase != nil {
			row.FirstPurchase = isoString(*acc.firstPurchase)
		}
		if acc.lastPurchase != nil {
			row.LastPurchase = isoString(*acc.lastPurchase)
		}
		if p, ok := profileByName[name]; ok {
			row.Age = demographic(p.Age)
			row.Sex = demographic(p.Sex)
			row.Address = demographic(p.Address)
			row.Occupation = demographic(p.Occupation)
			row.Business = demographic(p.Business)
			row.Phone = optional(p.Phone)
			row.Email = optional(p.Email)
			row.Notes = optional(p.Notes)
			row.ProfilePicture = optional(p.ProfilePicture)
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent > out[j].TotalSpent
	})
	return &dto.CustomerListResponse{Success: true, Customers: out}, nil
}

// topCounts devuelve las n entradas con mayor contador, resolviendo empates
// por orden de primera aparición en keys.
func topCounts(counts map[string]int, keys []string, n int) map[string]int {
	ordered := make([]string, len(keys))
	copy(ordered, keys)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	top := make(map[string]int, len(ordered))
	for _, k := range ordered {
		top[k] = counts[k]
	}
	return top
}

func orderedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// customerSales devuelve las ventas del cliente en el orden de escaneo.
func (uc *UseCase) customerSales(ctx context.Context, customerName string) ([]entity.Sale, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Sale, 0)
	for _, s := range sales {
		if s.CustomerName == customerName {
			out = append(out, s)
		}
	}
	return out, nil
}

// Profile devuelve el perfil detallado de un cliente: estadísticas de compra,
// top-5 de artículos y categorías, tendencia mensual de los últimos 180 días
// y las diez ventas más recientes, fusionadas con los datos demográficos.
// Un cliente sin ventas ni perfil devuelve el perfil vacío, no 404.
func (uc *UseCase) Profile(ctx context.Context, customerName string) (*dto.CustomerProfileResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}

	var (
		totalSpent    float64
		totalItems    int
		purchaseDates []time.Time
	)
	favItems := make(map[string]int)
	favCategories := make(map[string]int)
	recent := make([]dto.CustomerSale, 0, len(sales))

	for _, s := range sales {
		recent = append(recent, dto.CustomerSale{
			ID:      s.ID,
			Date:    s.Date,
			Total:   s.Total,
			Items:   s.Items,
			StaffID: s.StaffID,
		})
		totalSpent += s.Total
		for _, it := range s.Items {
			totalItems += it.Qty()
			if it.Name != "" {
				favItems[it.Name] += it.Qty()
			}
			if it.Category != "" {
				favCategories[it.Category] += it.Qty()
			}
		}
		if ts, ok := s.Time(); ok {
			purchaseDates = append(purchaseDates, ts)
		}
	}

	// Más recientes primero. El orden es sobre la cadena ISO almacenada, que
	// ordena cronológicamente dentro de un mismo formato.
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})

	var avgOrder float64
	if len(sales) > 0 {
		avgOrder = totalSpent / float64(len(sales))
	}

	data := dto.CustomerProfileData{
		Name:               customerName,
		TotalSales:         len(sales),
		TotalSpent:         totalSpent,
		TotalItems:         totalItems,
		AvgOrderValue:      avgOrder,
		FavoriteItems:      topCounts(favItems, orderedKeys(favItems), 5),
		FavoriteCategories: topCounts(favCategories, orderedKeys(favCategories), 5),
		MonthlySpending:    monthlyTrend(sales, time.Now().AddDate(0, 0, -180)),
		Age:                "N/A",
		Sex:                "N/A",
		Address:            "N/A",
		Occupation:         "N/A",
		Business:           "N/A",
	}
	if len(purchaseDates) > 0 {
		first, last := purchaseDates[0], purchaseDates[0]
		for _, d := range purchaseDates[1:] {
			if d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
		}
		data.FirstPurchase = isoString(first)
		data.LastPurchase = isoString(last)
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	data.RecentSales = recent

	profile, err := uc.customerRepo.FindByName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		data.Age = demographic(profile.Age)
		data.Sex = demographic(profile.Sex)
		data.Address = demographic(profile.Address)
		data.Occupation = demographic(profile.Occupation)
		data.Business = demographic(profile.Business)
		data.Phone = optional(profile.Phone)
		data.Email = optional(profile.Email)
		data.Notes = optional(profile.Notes)
		data.ProfilePicture = optional(profile.ProfilePicture)
	}
	return &dto.CustomerProfileResponse{Success: true, Customer: data}, nil
}

// monthlyTrend agrega el gasto por mes calendario desde since, en orden
// cronológico ascendente.
func monthlyTrend(sales []entity.Sale, since time.Time) []dto.MonthSpend {
	byMonth := make(map[string]float64)
	for _, s := range sales {
		ts, ok := s.Time()
		if !ok || ts.Before(since) {
			continue
		}
		byMonth[monthKey(ts)] += s.Total
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]dto.MonthSpend, len(months))
	for i, m := range months {
		out[i] = dto.MonthSpend{Month: m, Spending: byMonth[m]}
	}
	return out
}

// Purchases devuelve el historial completo de compras del cliente, ordenado
// por fecha descendente.
func (uc *UseCase) Purchases(ctx context.Context, customerName string) (*dto.PurchasesResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}
	type dated struct {
		p  dto.Purchase
		ts time.Time
	}
	rows := make([]dated, 0, len(sales))
	for _, s := range sales {
		ts, _ := s.Time()
		rows = append(rows, dated{
			p:  dto.Purchase{Date: s.Date, Total: s.Total, Items: s.Items},
			ts: ts,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ts.After(rows[j].ts)
	})
	out := make([]dto.Purchase, len(rows))
	for i, r := range rows {
		out[i] = r.p
	}
	return &dto.PurchasesResponse{Success: true, Purchases: out}, nil
}

// Summary devuelve primera y última compra, gasto del mes en curso y el mes
// de mayor gasto. El empate entre meses lo gana el primero que alcanzó el
// máximo, en orden de aparición; la comparación es estrictamente mayor.
func (uc *UseCase) Summary(ctx context.Context, customerName string) (*dto.CustomerSummaryResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}

	currentMonth := monthKey(time.Now())
	byMonth := make(map[string]float64)
	var monthOrder []string
	var purchaseDates []time.Time
	var currentMonthSpending float64

	for _, s := range sales {
		ts, ok := s.Time()
		if !ok {
			continue
		}
		purchaseDates = append(purchaseDates, ts)
		mk := monthKey(ts)
		if _, seen := byMonth[mk]; !seen {
			monthOrder = append(monthOrder, mk)
		}
		byMonth[mk] += s.Total
		if mk == currentMonth {
			currentMonthSpending += s.Total
		}
	}

	summary := dto.CustomerSummary{CurrentMonthSpending: currentMonthSpending}
	if len(purchaseDates) > 0 {
		first, last := purchaseDates[0], purchaseDates[0]
		for _, d := range purchaseDates[1:] {
			if d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
		}
		summary.FirstPurchase = isoString(first)
		summary.RecentPurchase = isoString(last)
	}
	for _, mk := range monthOrder {
		if byMonth[mk] > summary.MostSpendingAmount {
			m := mk
			summary.MostSpendingMonth = &m
			summary.MostSpendingAmount = byMonth[mk]
		}
	}
	return &dto.CustomerSummaryResponse{Success: true, Summary: summary}, nil
}

// itemKey par (artículo, categoría) de los agregados de gasto.
type itemKey struct {
	item     string
	category string
}

func saleItemKey(it entity.SaleItem) itemKey {
	k := itemKey{item: it.Name, category: it.Category}
	if k.item == "" {
		k.item = "Unknown"
	}
	if k.category == "" {
		k.category = "Uncategorized"
	}
	return k
}

// SpendingByItemCategory devuelve el gasto total por par (artículo,
// categoría). El importe se recalcula como precio por cantidad de cada
// línea, no a partir del total de la venta.
func (uc *UseCase) SpendingByItemCategory(ctx context.Context, customerName string) (*dto.SpendingResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}
	amounts := make(map[itemKey]float64)
	var order []itemKey
	for _, s := range sales {
		for _, it := range s.Items {
			k := saleItemKey(it)
			if _, seen := amounts[k]; !seen {
				order = append(order, k)
			}
			amounts[k] += it.Amount()
		}
	}
	out := make([]dto.SpendingEntry, len(order))
	for i, k := range order {
		out[i] = dto.SpendingEntry{Item: k.item, Category: k.category, Amount: amounts[k]}
	}
	return &dto.SpendingResponse{Success: true, Spending: out}, nil
}

// SpendingTable devuelve la tabla de gasto por par (artículo, categoría) con
// cantidades acumuladas.
func (uc *UseCase) SpendingTable(ctx context.Context, customerName string) (*dto.SpendingTableResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}
	type row struct {
		quantity int
		amount   float64
	}
	rows := make(map[itemKey]*row)
	var order []itemKey
	for _, s := range sales {
		for _, it := range s.Items {
			k := saleItemKey(it)
			r, seen := rows[k]
			if !seen {
				r = &row{}
				rows[k] = r
				order = append(order, k)
			}
			r.quantity += it.Qty()
			r.amount += it.Amount()
		}
	}
	out := make([]dto.SpendingRow, len(order))
	for i, k := range order {
		out[i] = dto.SpendingRow{Item: k.item, Category: k.category, Quantity: rows[k].quantity, Amount: rows[k].amount}
	}
	return &dto.SpendingTableResponse{Success: true, Table: out}, nil
}

// TopItemsMonthly devuelve los tres artículos con mayor gasto acumulado y su
// serie mensual sobre todos los meses del historial del cliente, alineada
// con la lista de meses ordenada. Las ventas con fecha ilegible no aportan.
func (uc *UseCase) TopItemsMonthly(ctx context.Context, customerName string) (*dto.TopItemsMonthlyResponse, error) {
	sales, err := uc.customerSales(ctx, customerName)
	if err != nil {
		return nil, err
	}

	itemTotals := make(map[string]float64)
	var itemOrder []string
	perItemMonthly := make(map[string]map[string]float64)
	monthsSet := make(map[string]bool)

	for _, s := range sales {
		ts, ok := s.Time()
		if !ok {
			continue
		}
		mk := monthKey(ts)
		monthsSet[mk] = true
		for _, it := range s.Items {
			name := it.Name
			if name == "" {
				name = "Unknown"
			}
			if _, seen := itemTotals[name]; !seen {
				itemOrder = append(itemOrder, name)
				perItemMonthly[name] = make(map[string]float64)
			}
			itemTotals[name] += it.Amount()
			perItemMonthly[name][mk] += it.Amount()
		}
	}

	sort.SliceStable(itemOrder, func(i, j int) bool {
		return itemTotals[itemOrder[i]] > itemTotals[itemOrder[j]]
	})
	if len(itemOrder) > 3 {
		itemOrder = itemOrder[:3]
	}

	months := make([]string, 0, len(monthsSet))
	for m := range monthsSet {
		months = append(months, m)
	}
	sort.Strings(months)

	data := dto.TopItemsMonthly{Months: months, Items: make([]dto.TopItemMonthly, 0, len(itemOrder))}
	for _, name := range itemOrder {
		series := make([]float64, len(months))
		for i, m := range months {
			series[i] = perItemMonthly[name][m]
		}
		data.Items = append(data.Items, dto.TopItemMonthly{Name: name, Monthly: series})
	}
	return &dto.TopItemsMonthlyResponse{Success: true, Data: data}, nil
}
