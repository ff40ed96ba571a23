package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"boxful-client/internal/domain"
)

const bom = "\ufeff"

var csvHeader = []string{
	"ID de Orden",
	"Nombre",
	"Apellidos",
	"Email",
	"Teléfono",
	"Departamento",
	"Municipio",
	"Dirección Destino",
	"Punto de Referencia",
	"Estado",
	"Fecha de Creación",
	"Fecha Estimada",
	"Productos",
	"Peso Total (lbs)",
	"Indicaciones",
}

// ProductsSummary renders every product as "content (LxHxWcm, Wlbs)",
// joined by "; ".
func ProductsSummary(items []domain.LineItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Summary()
	}
	return strings.Join(parts, "; ")
}

func csvRow(o domain.Order) []string {
	return []string{
		o.ID,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.Department,
		o.Municipality,
		o.DestinationAddress,
		o.ReferencePoint,
		o.Status.Label(),
		FormatDate(o.CreatedAt),
		FormatDate(o.EstimatedDate),
		ProductsSummary(o.Products),
		strconv.FormatFloat(o.TotalWeight(), 'f', 2, 64),
		o.Information,
	}
}

func statsRows(st ExportStats) [][]string {
	n := strconv.Itoa
	return [][]string{
		{},
		{"ESTADÍSTICAS DEL REPORTE"},
		{"Total de órdenes", n(st.Total)},
		{"Órdenes pendientes", n(st.Count(domain.StatusPending))},
		{"Órdenes confirmadas", n(st.Count(domain.StatusConfirmed))},
		{"Órdenes en tránsito", n(st.Count(domain.StatusInTransit))},
		{"Órdenes entregadas", n(st.Count(domain.StatusDelivered))},
		{"Órdenes canceladas", n(st.Count(domain.StatusCancelled))},
		{"Total de productos", n(st.Products)},
		{"Fecha de exportación", st.ExportDate},
		{"Rango de fechas", st.DateRange},
	}
}

// WriteCSV writes the BOM, a header, one row per order and the statistics
// block.
func WriteCSV(w io.Writer, orders []domain.Order, st ExportStats) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, o := range orders {
		if err := cw.Write(csvRow(o)); err != nil {
			return fmt.Errorf("write csv row %s: %w", o.ID, err)
		}
	}
	if err := cw.WriteAll(statsRows(st)); err != nil {
		return fmt.Errorf("write csv stats: %w", err)
	}
	return nil
}
