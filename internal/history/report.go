package history

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"boxful-client/internal/domain"
)

type reportRow struct {
	ID           string
	Name         string
	Department   string
	Municipality string
	Products     int
	Weight       string
	StatusLabel  string
	StatusColor  template.CSS
	Date         string
}

type reportCard struct {
	Value int
	Label string
}

type reportData struct {
	Stats    ExportStats
	Bounded  bool
	Cards    []reportCard
	Rows     []reportRow
	Exported int
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reporte de Mis Envíos</title>
<style>
@media print { body { margin: 0; } .no-print { display: none; } }
body { font-family: Arial, sans-serif; margin: 20px; color: #333; }
.header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #e5562f; padding-bottom: 20px; }
.company-name { color: #e5562f; font-size: 24px; font-weight: bold; margin-bottom: 10px; }
.report-title { font-size: 18px; margin-bottom: 5px; }
.report-date { color: #666; font-size: 12px; }
.stats-section { background-color: #f9f9f9; padding: 15px; border-radius: 8px; margin-bottom: 30px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(150px, 1fr)); gap: 15px; }
.stat-item { text-align: center; }
.stat-number { font-size: 20px; font-weight: bold; color: #e5562f; }
.stat-label { font-size: 12px; color: #666; margin-top: 5px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; font-size: 11px; }
th { background-color: #e5562f; color: white; padding: 10px 8px; text-align: left; font-size: 10px; font-weight: bold; }
td { border: 1px solid #ddd; padding: 8px; font-size: 10px; }
td.num { text-align: center; }
.badge { color: white; padding: 2px 6px; border-radius: 4px; font-size: 9px; }
.footer { margin-top: 30px; text-align: center; font-size: 10px; color: #666; border-top: 1px solid #ddd; padding-top: 15px; }
</style>
</head>
<body onload="window.print()">
<div class="header">
  <div class="company-name">Sistema de Envíos</div>
  <div class="report-title">Reporte de Mis Envíos</div>
  <div class="report-date">Generado el {{.Stats.ExportDate}}</div>
  {{- if .Bounded}}
  <div class="report-date">Período: {{.Stats.DateRange}}</div>
  {{- end}}
</div>
<div class="stats-section">
  <h3 style="margin-top: 0; color: #333;">Estadísticas del Reporte</h3>
  <div class="stats-grid">
  {{- range .Cards}}
    <div class="stat-item"><div class="stat-number">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>
  {{- end}}
  </div>
</div>
<table>
  <thead>
    <tr><th>ID Orden</th><th>Nombre Completo</th><th>Departamento</th><th>Municipio</th><th>Productos</th><th>Peso Total</th><th>Estado</th><th>Fecha</th></tr>
  </thead>
  <tbody>
  {{- range .Rows}}
    <tr>
      <td>{{.ID}}</td>
      <td>{{.Name}}</td>
      <td>{{.Department}}</td>
      <td>{{.Municipality}}</td>
      <td class="num">{{.Products}}</td>
      <td class="num">{{.Weight}} lbs</td>
      <td class="num"><span class="badge" style="background-color: {{.StatusColor}};">{{.StatusLabel}}</span></td>
      <td>{{.Date}}</td>
    </tr>
  {{- end}}
  </tbody>
</table>
<div class="footer">
  <p>Este reporte contiene {{.Exported}} órdenes de un total de {{.Stats.Total}} registradas.</p>
  <p>Reporte generado automáticamente por el Sistema de Envíos</p>
</div>
</body>
</html>
`))

func reportRowOf(o domain.Order) reportRow {
	id := o.ID
	if id == "" {
		id = "N/A"
	}
	date := FormatDate(o.CreatedAt)
	if date == "" {
		date = FormatDate(o.EstimatedDate)
	}
	if date == "" {
		date = "N/A"
	}
	return reportRow{
		ID:           id,
		Name:         o.FirstName + " " + o.LastName,
		Department:   o.Department,
		Municipality: o.Municipality,
		Products:     len(o.Products),
		Weight:       strconv.FormatFloat(o.TotalWeight(), 'f', 1, 64),
		StatusLabel:  o.Status.Label(),
		StatusColor:  template.CSS(o.Status.Color()),
		Date:         date,
	}
}

// WriteReport renders the printable HTML report. The page opens the print
// dialog once loaded.
func WriteReport(w io.Writer, orders []domain.Order, st ExportStats) error {
	data := reportData{
		Stats:   st,
		Bounded: st.DateRange != (domain.DateRange{}).Describe(),
		Cards: []reportCard{
			{st.Total, "Total Órdenes"},
			{st.Count(domain.StatusPending), "Pendientes"},
			{st.Count(domain.StatusConfirmed), "Confirmadas"},
			{st.Count(domain.StatusDelivered), "Entregadas"},
			{st.Products, "Total Productos"},
		},
		Exported: len(orders),
	}
	for _, o := range orders {
		data.Rows = append(data.Rows, reportRowOf(o))
	}
	if err := reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
