package stock_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
	"github.com/mudras/puntos-stock-api/pkg/textutil"
)

// ─── Dobles en memoria de los puertos de persistencia ─────────────────────────
// Imitan el comportamiento observable de los adaptadores de PostgreSQL:
// lecturas devuelven copias, el stock inexistente llega como fila en cero y el
// TxRunner restaura el estado si el callback falla (rollback).

type puntoRepoFalso struct {
	puntos    map[int64]*entity.Punto
	proximoID int64
}

func nuevoPuntoRepoFalso() *puntoRepoFalso {
	return &puntoRepoFalso{puntos: make(map[int64]*entity.Punto), proximoID: 1}
}

func (r *puntoRepoFalso) Crear(_ context.Context, p *entity.Punto) error {
	p.ID = r.proximoID
	r.proximoID++
	copia := *p
	r.puntos[p.ID] = &copia
	return nil
}

func (r *puntoRepoFalso) ObtenerPorID(_ context.Context, id int64) (*entity.Punto, error) {
	p, ok := r.puntos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *puntoRepoFalso) Actualizar(_ context.Context, p *entity.Punto) error {
	copia := *p
	r.puntos[p.ID] = &copia
	return nil
}

func (r *puntoRepoFalso) Listar(_ context.Context, f repository.FiltrosPuntos) ([]*entity.Punto, int, error) {
	lista := r.ordenados()
	var filtrados []*entity.Punto
	for _, p := range lista {
		if f.Tipo != nil && p.Tipo != *f.Tipo {
			continue
		}
		if f.Activo != nil && p.Activo != *f.Activo {
			continue
		}
		if !textutil.Coincide(p.Nombre+" "+p.Descripcion, f.Busqueda) {
			continue
		}
		copia := *p
		filtrados = append(filtrados, &copia)
	}
	return filtrados, len(filtrados), nil
}

func (r *puntoRepoFalso) ListarActivos(_ context.Context) ([]*entity.Punto, error) {
	var activos []*entity.Punto
	for _, p := range r.ordenados() {
		if p.Activo {
			copia := *p
			activos = append(activos, &copia)
		}
	}
	return activos, nil
}

func (r *puntoRepoFalso) ordenados() []*entity.Punto {
	lista := make([]*entity.Punto, 0, len(r.puntos))
	for _, p := range r.puntos {
		lista = append(lista, p)
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].ID < lista[j].ID })
	return lista
}

type articuloRepoFalso struct {
	articulos map[int64]*entity.Articulo
}

func nuevoArticuloRepoFalso() *articuloRepoFalso {
	return &articuloRepoFalso{articulos: make(map[int64]*entity.Articulo)}
}

func (r *articuloRepoFalso) ObtenerPorID(_ context.Context, id int64) (*entity.Articulo, error) {
	a, ok := r.articulos[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *articuloRepoFalso) Buscar(_ context.Context, f repository.FiltrosArticulos) ([]*entity.Articulo, error) {
	ids := make([]int64, 0, len(r.articulos))
	for id := range r.articulos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var res []*entity.Articulo
	for _, id := range ids {
		a := r.articulos[id]
		if f.Rubro != "" && a.Rubro != f.Rubro {
			continue
		}
		if f.Proveedor != "" && a.Proveedor != f.Proveedor {
			continue
		}
		if !textutil.Coincide(a.Codigo+" "+a.Descripcion, f.Busqueda) {
			continue
		}
		copia := *a
		res = append(res, &copia)
	}
	return res, nil
}

type stockRepoFalso struct {
	filas             map[[2]int64]*entity.StockPunto // clave (puntoID, articuloID)
	catalogo          *articuloRepoFalso
	lecturasPorMatriz int // contador de ListarPorArticulos, para tests de cache
}

func nuevoStockRepoFalso(catalogo *articuloRepoFalso) *stockRepoFalso {
	return &stockRepoFalso{filas: make(map[[2]int64]*entity.StockPunto), catalogo: catalogo}
}

func (r *stockRepoFalso) fijar(puntoID, articuloID int64, cantidad decimal.Decimal) {
	r.filas[[2]int64{puntoID, articuloID}] = &entity.StockPunto{
		PuntoID:    puntoID,
		ArticuloID: articuloID,
		Cantidad:   cantidad,
	}
}

func (r *stockRepoFalso) cantidad(puntoID, articuloID int64) decimal.Decimal {
	if fila, ok := r.filas[[2]int64{puntoID, articuloID}]; ok {
		return fila.Cantidad
	}
	return decimal.Zero
}

func (r *stockRepoFalso) Obtener(_ context.Context, puntoID, articuloID int64) (*entity.StockPunto, error) {
	if fila, ok := r.filas[[2]int64{puntoID, articuloID}]; ok {
		copia := *fila
		return &copia, nil
	}
	// Representación dispersa: sin fila equivale a cantidad cero
	return &entity.StockPunto{PuntoID: puntoID, ArticuloID: articuloID, Cantidad: decimal.Zero}, nil
}

func (r *stockRepoFalso) ObtenerParaUpdate(ctx context.Context, puntoID, articuloID int64) (*entity.StockPunto, error) {
	return r.Obtener(ctx, puntoID, articuloID)
}

func (r *stockRepoFalso) Upsert(_ context.Context, s *entity.StockPunto) error {
	copia := *s
	r.filas[[2]int64{s.PuntoID, s.ArticuloID}] = &copia
	return nil
}

func (r *stockRepoFalso) ListarPorPunto(_ context.Context, puntoID int64, f repository.FiltrosStock) ([]*repository.StockConArticulo, int, error) {
	var res []*repository.StockConArticulo
	for _, fila := range r.filas {
		if fila.PuntoID != puntoID {
			continue
		}
		articulo := r.catalogo.articulos[fila.ArticuloID]
		if articulo == nil {
			continue
		}
		if !textutil.Coincide(articulo.Codigo+" "+articulo.Descripcion, f.Busqueda) {
			continue
		}
		if f.Rubro != "" && articulo.Rubro != f.Rubro {
			continue
		}
		res = append(res, &repository.StockConArticulo{StockPunto: *fila, Articulo: *articulo})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ArticuloID < res[j].ArticuloID })
	return res, len(res), nil
}

func (r *stockRepoFalso) ListarPorArticulos(_ context.Context, articuloIDs []int64) ([]*entity.StockPunto, error) {
	r.lecturasPorMatriz++
	buscados := make(map[int64]bool, len(articuloIDs))
	for _, id := range articuloIDs {
		buscados[id] = true
	}
	var res []*entity.StockPunto
	for _, fila := range r.filas {
		if buscados[fila.ArticuloID] {
			copia := *fila
			res = append(res, &copia)
		}
	}
	return res, nil
}

func (r *stockRepoFalso) InicializarFaltantes(_ context.Context, puntoID int64) (int, error) {
	n := 0
	for id := range r.catalogo.articulos {
		clave := [2]int64{puntoID, id}
		if _, ok := r.filas[clave]; !ok {
			r.filas[clave] = &entity.StockPunto{PuntoID: puntoID, ArticuloID: id, Cantidad: decimal.Zero}
			n++
		}
	}
	return n, nil
}

type movRepoFalso struct {
	movimientos []*entity.MovimientoStock
	errCrear    error // si está seteado, Crear falla (simula fallo de log)
}

func (r *movRepoFalso) Crear(_ context.Context, m *entity.MovimientoStock) error {
	if r.errCrear != nil {
		return r.errCrear
	}
	copia := *m
	r.movimientos = append(r.movimientos, &copia)
	return nil
}

func (r *movRepoFalso) Listar(_ context.Context, f repository.FiltrosMovimientos) ([]*repository.MovimientoConDetalle, int, error) {
	var res []*repository.MovimientoConDetalle
	for _, m := range r.movimientos {
		if f.ArticuloID != nil && m.ArticuloID != *f.ArticuloID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		if f.PuntoID != nil {
			coincide := (m.PuntoOrigenID != nil && *m.PuntoOrigenID == *f.PuntoID) ||
				(m.PuntoDestinoID != nil && *m.PuntoDestinoID == *f.PuntoID)
			if !coincide {
				continue
			}
		}
		res = append(res, &repository.MovimientoConDetalle{MovimientoStock: *m})
	}
	return res, len(res), nil
}

type estadisticasRepoFalso struct {
	resumen repository.EstadisticasPuntos
}

func (r *estadisticasRepoFalso) Resumen(_ context.Context) (*repository.EstadisticasPuntos, error) {
	copia := r.resumen
	return &copia, nil
}

// txRunnerFalso ejecuta el callback sobre los repos en memoria; si falla,
// restaura el estado previo, igual que el rollback de la transacción real.
type txRunnerFalso struct {
	stock *stockRepoFalso
	mov   *movRepoFalso
}

func (t *txRunnerFalso) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	respaldo := make(map[[2]int64]*entity.StockPunto, len(t.stock.filas))
	for k, v := range t.stock.filas {
		copia := *v
		respaldo[k] = &copia
	}
	cantidadMovs := len(t.mov.movimientos)

	if err := fn(t.stock, t.mov); err != nil {
		t.stock.filas = respaldo
		t.mov.movimientos = t.mov.movimientos[:cantidadMovs]
		return err
	}
	return nil
}

// ─── Entorno de pruebas ───────────────────────────────────────────────────────

type entorno struct {
	puntos    *puntoRepoFalso
	articulos *articuloRepoFalso
	stock     *stockRepoFalso
	movs      *movRepoFalso
	est       *estadisticasRepoFalso
	reloj     time.Time
}

// nuevoEntorno arma los fakes con el escenario base: un depósito, una tienda
// y el artículo 7 del catálogo.
func nuevoEntorno() *entorno {
	e := &entorno{
		puntos:    nuevoPuntoRepoFalso(),
		articulos: nuevoArticuloRepoFalso(),
		reloj:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
	e.stock = nuevoStockRepoFalso(e.articulos)
	e.movs = &movRepoFalso{}
	e.est = &estadisticasRepoFalso{}

	_ = e.puntos.Crear(context.Background(), &entity.Punto{
		Nombre: "Deposito Centro", Tipo: entity.PuntoTipoDeposito, Activo: true,
	})
	_ = e.puntos.Crear(context.Background(), &entity.Punto{
		Nombre: "Tienda Norte", Tipo: entity.PuntoTipoVenta, Activo: true,
	})
	e.articulos.articulos[7] = &entity.Articulo{
		ID: 7, Codigo: "SAH-007", Descripcion: "Sahumerio Palo Santo",
		Rubro: "Sahumerios", Proveedor: "Aromas del Sur",
		PrecioVenta: decimal.NewFromInt(1500),
	}
	return e
}

func (e *entorno) ahora() time.Time { return e.reloj }
