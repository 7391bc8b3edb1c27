// Package pdf genera el reporte imprimible de la matriz de distribución de
// stock: una fila por artículo, una columna por punto mudras activo y la
// columna de total, en A4 apaisado.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mudras/puntos-stock-api/internal/application/dto"
	appstock "github.com/mudras/puntos-stock-api/internal/application/stock"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

var (
	colorPrimario = &props.Color{Red: 91, Green: 54, Blue: 140}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// La grilla de maroto tiene 12 columnas: 2 para código, 1 para el total y una
// por punto; el resto queda para la descripción.
const maxPuntosEnReporte = 8

var _ appstock.MatrizPDFGenerator = (*MarotoMatrizReport)(nil)

// MarotoMatrizReport implementa stock.MatrizPDFGenerator usando Maroto v2.
type MarotoMatrizReport struct{}

// NewMarotoMatrizReport construye el generador.
func NewMarotoMatrizReport() *MarotoMatrizReport { return &MarotoMatrizReport{} }

// GenerarMatrizPDF genera el PDF de la matriz y devuelve sus bytes.
func (g *MarotoMatrizReport) GenerarMatrizPDF(
	_ context.Context,
	filas []dto.FilaMatrizStock,
	puntos []*entity.Punto,
	generado time.Time,
) ([]byte, error) {
	if len(puntos) > maxPuntosEnReporte {
		return nil, fmt.Errorf("pdf: la matriz imprimible soporta hasta %d puntos, hay %d", maxPuntosEnReporte, len(puntos))
	}
	anchoDescripcion := 12 - 2 - 1 - len(puntos)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Matriz de Stock por Punto Mudras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(encabezadoRow(generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(cabeceraTablaRow(puntos, anchoDescripcion))
	for _, fila := range filas {
		m.AddRows(filaArticuloRow(fila, anchoDescripcion))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}))
	m.AddRows(pieRow(len(filas), len(puntos)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// encabezadoRow: título del reporte + fecha de generación.
func encabezadoRow(generado time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("MATRIZ DE STOCK POR PUNTO MUDRAS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimario, Top: 1,
			}),
			text.New("Distribución del inventario entre puntos de venta y depósitos", props.Text{
				Size: 8, Top: 9, Color: colorGris,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGris,
			}),
		),
	)
}

// cabeceraTablaRow: Código | Descripción | una columna por punto | Total.
func cabeceraTablaRow(puntos []*entity.Punto, anchoDescripcion int) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{
		h("Código", 2, align.Left),
		h("Descripción", anchoDescripcion, align.Left),
	}
	for _, p := range puntos {
		cols = append(cols, h(p.Nombre, 1, align.Center))
	}
	cols = append(cols, h("Total", 1, align.Right))
	return row.New(9).Add(cols...)
}

// filaArticuloRow: una fila por artículo con el vector completo (ceros incluidos).
func filaArticuloRow(fila dto.FilaMatrizStock, anchoDescripcion int) core.Row {
	celda := func(s string, size int, a align.Type, negrita bool) core.Col {
		estilo := fontstyle.Normal
		if negrita {
			estilo = fontstyle.Bold
		}
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Style: estilo, Top: 1, Left: 1, Right: 1,
		}))
	}
	cols := []core.Col{
		celda(fila.Codigo, 2, align.Left, false),
		celda(fila.Descripcion, anchoDescripcion, align.Left, false),
	}
	for _, celdaPunto := range fila.Distribucion {
		cols = append(cols, celda(celdaPunto.Cantidad.String(), 1, align.Center, false))
	}
	cols = append(cols, celda(fila.CantidadTotal.String(), 1, align.Right, true))
	return row.New(6).Add(cols...)
}

// pieRow: resumen del reporte.
func pieRow(articulos, puntos int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("%d artículos en %d puntos activos. Las celdas en 0 indican punto sin stock del artículo.",
				articulos, puntos),
			props.Text{Size: 6.5, Color: colorGris, Top: 2},
		),
	))
}
