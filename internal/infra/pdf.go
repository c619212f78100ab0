package infra

// pdf.go — PDF rendering using go-pdf/fpdf.
// Two documents come out of here:
//   - the purchasing list: aggregated ingredient totals grouped by category
//   - the client quote: per-section HT/TVA/TTC table plus global totals
// Output files are written under storagePath.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/calc"
	"github.com/JugaSeguro/adminpanelfuegos-sub000/internal/model"
)

// ordenCategorias fixes the section order of the purchasing list. Unassigned
// products always print last.
var ordenCategorias = []string{
	model.CategoriaEntradas,
	model.CategoriaCarnesClasicas,
	model.CategoriaCarnesPremium,
	model.CategoriaVerduras,
	model.CategoriaPan,
	model.CategoriaPostres,
	model.CategoriaExtras,
	model.CategoriaMaterial,
	model.CategoriaSinAsignar,
}

var etiquetasCategoria = map[string]string{
	model.CategoriaEntradas:       "Entradas",
	model.CategoriaCarnesClasicas: "Carnes clásicas",
	model.CategoriaCarnesPremium:  "Carnes premium",
	model.CategoriaVerduras:       "Verduras",
	model.CategoriaPan:            "Pan",
	model.CategoriaPostres:        "Postres",
	model.CategoriaExtras:         "Extras",
	model.CategoriaMaterial:       "Material",
	model.CategoriaSinAsignar:     "Sin categoría",
}

// GenerarListaComprasPDF renders the aggregated purchasing list to an A4 PDF.
// Returns the absolute path of the generated file.
func GenerarListaComprasPDF(agregado calc.Agregado, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("lista_compras_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Lista de Compras", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colNombre := contentW * 0.6
	colCant := contentW * 0.22
	colUnidad := contentW * 0.18

	for _, categoria := range ordenCategorias {
		totales := agregado.PorCategoria[categoria]
		if len(totales) == 0 {
			continue
		}

		// ── Category block ────────────────────────────────────────────────────
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(contentW, 7, etiquetaDeCategoria(categoria), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, t := range totales {
			display := calc.ConvertirADisplayResumen(t.Producto, t.Cantidad)
			pdf.CellFormat(colNombre, 6, t.Producto.Nombre, "B", 0, "L", false, 0, "")
			pdf.CellFormat(colCant, 6, display.Valor.String(), "B", 0, "R", false, 0, "")
			pdf.CellFormat(colUnidad, 6, " "+string(display.Unidad), "B", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerarPresupuestoPDF renders a client quote with one row per present
// section and the pre-discount global totals. The discount, when set, prints
// as an informational line under the table.
func GenerarPresupuestoPDF(p *model.Presupuesto, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("presupuesto_%s.pdf", p.ID.String())
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Presupuesto", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, p.Cliente, "", 1, "C", false, 0, "")
	if p.Fecha != nil {
		pdf.CellFormat(contentW, 5, p.Fecha.Format("02/01/2006"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// ── Section table ─────────────────────────────────────────────────────────
	colSeccion := contentW * 0.34
	colMonto := contentW * 0.22

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colSeccion, 7, "Sección", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colMonto, 7, "Total HT", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colMonto, 7, "TVA", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colMonto, 7, "Total TTC", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	fila := func(nombre string, s seccionTotales) {
		pdf.CellFormat(colSeccion, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(colMonto, 6, s.ht.StringFixed(2)+" EUR", "", 0, "R", false, 0, "")
		pdf.CellFormat(colMonto, 6, s.tva.StringFixed(2)+" EUR", "", 0, "R", false, 0, "")
		pdf.CellFormat(colMonto, 6, s.ttc.StringFixed(2)+" EUR", "", 1, "R", false, 0, "")
	}
	if p.Menu != nil {
		fila("Menú", seccionTotales{p.Menu.TotalHT, p.Menu.TVA, p.Menu.TotalTTC})
	}
	if p.Servicio != nil {
		fila("Servicio", seccionTotales{p.Servicio.TotalHT, p.Servicio.TVA, p.Servicio.TotalTTC})
	}
	if p.Material != nil {
		fila("Material", seccionTotales{p.Material.TotalHT, p.Material.TVA, p.Material.TotalTTC})
	}
	if p.Entrega != nil {
		fila("Entrega y reprise", seccionTotales{p.Entrega.TotalHT, p.Entrega.TVA, p.Entrega.TotalTTC})
	}
	if p.Bebidas != nil {
		fila("Bebidas", seccionTotales{p.Bebidas.TotalHT, p.Bebidas.TVA, p.Bebidas.TotalTTC})
	}
	if p.Desplazamiento != nil {
		fila("Desplazamiento", seccionTotales{p.Desplazamiento.TotalHT, p.Desplazamiento.TVA, p.Desplazamiento.TotalTTC})
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Global totals ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	fila("TOTAL", seccionTotales{p.TotalHT, p.TotalTVA, p.TotalTTC})

	if !p.DescuentoPct.IsZero() {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5,
			fmt.Sprintf("Descuento %s%%: -%s EUR", p.DescuentoPct.String(), p.MontoDescuento.StringFixed(2)),
			"", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6,
			fmt.Sprintf("Total con descuento: %s EUR", p.TotalTTC.Sub(p.MontoDescuento).StringFixed(2)),
			"", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

type seccionTotales struct {
	ht, tva, ttc decimal.Decimal
}

func etiquetaDeCategoria(categoria string) string {
	if etiqueta, ok := etiquetasCategoria[categoria]; ok {
		return etiqueta
	}
	return categoria
}
