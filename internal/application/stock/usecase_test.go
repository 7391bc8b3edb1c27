package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudras/puntos-stock-api/internal/application/cache"
	"github.com/mudras/puntos-stock-api/internal/application/stock"
	"github.com/mudras/puntos-stock-api/internal/domain"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

// IDs asignados por nuevoEntorno en orden de creación.
const (
	idCentro = int64(1) // Deposito Centro (deposito)
	idNorte  = int64(2) // Tienda Norte (venta)
	idArt    = int64(7) // Sahumerio Palo Santo
)

func nuevoUseCase(e *entorno, c *cache.Cache) *stock.StockUseCase {
	return stock.NewStockUseCase(
		&txRunnerFalso{stock: e.stock, mov: e.movs},
		e.puntos, e.articulos, e.stock, e.movs, e.est,
		c, e.ahora,
	)
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ─── Ajuste ───────────────────────────────────────────────────────────────────

func TestAjustar_EstableceCantidadAbsoluta(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idNorte, idArt, d(25))
	uc := nuevoUseCase(e, nil)

	resp, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idNorte, ArticuloID: idArt, NuevaCantidad: d(40), Motivo: "recuento físico",
	})
	require.NoError(t, err)

	// La cantidad es el total nuevo, no una suma
	assert.True(t, resp.Cantidad.Equal(d(40)))
	assert.True(t, e.stock.cantidad(idNorte, idArt).Equal(d(40)))

	// El movimiento registra el delta implícito con antes y después
	require.Len(t, e.movs.movimientos, 1)
	mov := e.movs.movimientos[0]
	assert.Equal(t, entity.MovimientoAjuste, mov.Tipo)
	assert.True(t, mov.Cantidad.Equal(d(15)), "delta = nueva - actual")
	assert.True(t, mov.CantidadAnterior.Equal(d(25)))
	assert.True(t, mov.CantidadNueva.Equal(d(40)))
	assert.Equal(t, "recuento físico", mov.Motivo)
}

func TestAjustar_DeltaCeroTambienSeRegistra(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idNorte, idArt, d(25))
	uc := nuevoUseCase(e, nil)

	_, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idNorte, ArticuloID: idArt, NuevaCantidad: d(25),
	})
	require.NoError(t, err)

	require.Len(t, e.movs.movimientos, 1)
	assert.True(t, e.movs.movimientos[0].Cantidad.IsZero(), "ajustar al mismo valor produce movimiento con delta 0")
}

func TestAjustar_DeltaNegativoEsValido(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(50))
	uc := nuevoUseCase(e, nil)

	resp, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idCentro, ArticuloID: idArt, NuevaCantidad: d(30),
	})
	require.NoError(t, err)
	assert.True(t, resp.Cantidad.Equal(d(30)))
	assert.True(t, e.movs.movimientos[0].Cantidad.Equal(d(-20)))
}

func TestAjustar_CantidadNegativaRechazada(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idNorte, idArt, d(25))
	uc := nuevoUseCase(e, nil)

	_, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idNorte, ArticuloID: idArt, NuevaCantidad: d(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Nada cambió: ni stock ni log
	assert.True(t, e.stock.cantidad(idNorte, idArt).Equal(d(25)))
	assert.Empty(t, e.movs.movimientos)
}

func TestAjustar_PuntoInexistente(t *testing.T) {
	e := nuevoEntorno()
	uc := nuevoUseCase(e, nil)

	_, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: 999, ArticuloID: idArt, NuevaCantidad: d(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAjustar_ArticuloInexistente(t *testing.T) {
	e := nuevoEntorno()
	uc := nuevoUseCase(e, nil)

	_, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idNorte, ArticuloID: 12345, NuevaCantidad: d(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAjustar_CreaEntradaDiferida(t *testing.T) {
	e := nuevoEntorno()
	uc := nuevoUseCase(e, nil)

	// Sin fila previa: la entrada nace con el primer ajuste
	resp, err := uc.Ajustar(context.Background(), stock.AjusteInput{
		PuntoID: idCentro, ArticuloID: idArt, NuevaCantidad: d(10),
	})
	require.NoError(t, err)
	assert.True(t, resp.Cantidad.Equal(d(10)))

	mov := e.movs.movimientos[0]
	assert.True(t, mov.CantidadAnterior.IsZero(), "sin entrada previa la cantidad anterior es 0")
	assert.True(t, mov.Cantidad.Equal(d(10)))
}

// ─── Incrementar (conveniencia sobre el primitivo absoluto) ──────────────────

func TestIncrementar_SumaSobreLaCantidadActual(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idNorte, idArt, d(10))
	uc := nuevoUseCase(e, nil)

	resp, err := uc.Incrementar(context.Background(), idNorte, idArt, d(5), "reposición", "u1")
	require.NoError(t, err)
	assert.True(t, resp.Cantidad.Equal(d(15)))

	// Por debajo sigue siendo un ajuste absoluto
	require.Len(t, e.movs.movimientos, 1)
	assert.Equal(t, entity.MovimientoAjuste, e.movs.movimientos[0].Tipo)
	assert.True(t, e.movs.movimientos[0].CantidadNueva.Equal(d(15)))
}

func TestIncrementar_NoPermiteQuedarNegativo(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idNorte, idArt, d(3))
	uc := nuevoUseCase(e, nil)

	_, err := uc.Incrementar(context.Background(), idNorte, idArt, d(-5), "", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, e.stock.cantidad(idNorte, idArt).Equal(d(3)))
}

// ─── Transferencia ────────────────────────────────────────────────────────────

func TestTransferir_ConservaElTotal(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(50))
	e.stock.fijar(idNorte, idArt, d(5))
	uc := nuevoUseCase(e, nil)

	resp, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(20),
	})
	require.NoError(t, err)

	assert.True(t, resp.Origen.Cantidad.Equal(d(30)))
	assert.True(t, resp.Destino.Cantidad.Equal(d(25)))

	// Ley de conservación: el total del artículo no cambia
	total := e.stock.cantidad(idCentro, idArt).Add(e.stock.cantidad(idNorte, idArt))
	assert.True(t, total.Equal(d(55)))

	// Un único movimiento con ambos puntos
	require.Len(t, e.movs.movimientos, 1)
	mov := e.movs.movimientos[0]
	assert.Equal(t, entity.MovimientoTransferencia, mov.Tipo)
	require.NotNil(t, mov.PuntoOrigenID)
	require.NotNil(t, mov.PuntoDestinoID)
	assert.Equal(t, idCentro, *mov.PuntoOrigenID)
	assert.Equal(t, idNorte, *mov.PuntoDestinoID)
	assert.True(t, mov.Cantidad.Equal(d(20)))
}

func TestTransferir_InsuficienteNoCambiaNada(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(30))
	e.stock.fijar(idNorte, idArt, d(25))
	uc := nuevoUseCase(e, nil)

	_, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(31),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El error tipado informa el disponible para que la UI corrija
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Disponible.Equal(d(30)))
	assert.True(t, insuf.Solicitado.Equal(d(31)))

	// Ambas entradas intactas y sin movimiento registrado
	assert.True(t, e.stock.cantidad(idCentro, idArt).Equal(d(30)))
	assert.True(t, e.stock.cantidad(idNorte, idArt).Equal(d(25)))
	assert.Empty(t, e.movs.movimientos)
}

func TestTransferir_MismoOrigenYDestino(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(100))
	uc := nuevoUseCase(e, nil)

	// Falla sea cual sea la cantidad, incluso habiendo stock de sobra
	for _, cantidad := range []decimal.Decimal{d(1), d(50), d(1000)} {
		_, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
			PuntoOrigenID: idCentro, PuntoDestinoID: idCentro, ArticuloID: idArt, Cantidad: cantidad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s", cantidad)
	}
}

func TestTransferir_CantidadNoPositiva(t *testing.T) {
	e := nuevoEntorno()
	uc := nuevoUseCase(e, nil)

	for _, cantidad := range []decimal.Decimal{decimal.Zero, d(-5)} {
		_, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
			PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: cantidad,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s", cantidad)
	}
}

func TestTransferir_TodoElDisponibleDejaOrigenEnCero(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(30))
	uc := nuevoUseCase(e, nil)

	resp, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(30),
	})
	require.NoError(t, err, "transferir exactamente lo disponible es válido")
	assert.True(t, resp.Origen.Cantidad.IsZero(), "0 es un estado de reposo válido")
	assert.True(t, resp.Destino.Cantidad.Equal(d(30)))
}

func TestTransferir_PuntoDesconocido(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(10))
	uc := nuevoUseCase(e, nil)

	_, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: 999, ArticuloID: idArt, Cantidad: d(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.movs.movimientos)
}

func TestTransferir_FalloEnElLogNoDejaEstadoParcial(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(50))
	e.movs.errCrear = errors.New("disco lleno")
	uc := nuevoUseCase(e, nil)

	_, err := uc.Transferir(context.Background(), stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(20),
	})
	require.Error(t, err)

	// Rollback: el stock vuelve al estado previo, sin mitades aplicadas
	assert.True(t, e.stock.cantidad(idCentro, idArt).Equal(d(50)))
	assert.True(t, e.stock.cantidad(idNorte, idArt).IsZero())
}

// ─── Escenario completo (depósito → tienda) ──────────────────────────────────

func TestEscenario_DepositoCentroYTiendaNorte(t *testing.T) {
	e := nuevoEntorno()
	e.stock.fijar(idCentro, idArt, d(50))
	e.stock.fijar(idNorte, idArt, d(5))
	uc := nuevoUseCase(e, nil)
	ctx := context.Background()

	// Transferencia válida: 20 unidades del depósito a la tienda
	resp, err := uc.Transferir(ctx, stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(20),
	})
	require.NoError(t, err)
	assert.True(t, resp.Origen.Cantidad.Equal(d(30)))
	assert.True(t, resp.Destino.Cantidad.Equal(d(25)))
	total := e.stock.cantidad(idCentro, idArt).Add(e.stock.cantidad(idNorte, idArt))
	assert.True(t, total.Equal(d(55)), "el total se conserva")

	// El segundo pedido excede lo que quedó en el depósito
	_, err = uc.Transferir(ctx, stock.TransferenciaInput{
		PuntoOrigenID: idCentro, PuntoDestinoID: idNorte, ArticuloID: idArt, Cantidad: d(31),
	})
	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.True(t, insuf.Disponible.Equal(d(30)), "el error informa el disponible real")

	// Ajustar la tienda al valor que ya tiene también es válido
	_, err = uc.Ajustar(ctx, stock.AjusteInput{
		PuntoID: idNorte, ArticuloID: idArt, NuevaCantidad: d(25),
	})
	require.NoError(t, err)
	ultimo := e.movs.movimientos[len(e.movs.movimientos)-1]
	assert.True(t, ultimo.Cantidad.IsZero())
}
