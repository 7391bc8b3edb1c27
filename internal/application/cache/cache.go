// Package cache implementa la cache de lecturas en memoria con TTL que la UI
// original mantenía por servicio: clave operación+argumentos, expiración por
// tiempo e invalidación explícita disparada por cada escritura. Es puramente
// de performance: nunca un mecanismo de correctitud.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// TTLPorDefecto expiración de entradas si no se configura otra.
const TTLPorDefecto = 5 * time.Minute

type entrada struct {
	datos    any
	guardado time.Time
}

// Cache almacén en memoria con TTL. El reloj se inyecta para poder testear la
// expiración sin dormir. Todos los métodos toleran receptor nil (cache
// deshabilitada), así los casos de uso no necesitan chequearla.
type Cache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	ahora    func() time.Time
	entradas map[string]entrada
}

// New construye la cache. ttl <= 0 usa TTLPorDefecto; ahora nil usa time.Now.
func New(ttl time.Duration, ahora func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = TTLPorDefecto
	}
	if ahora == nil {
		ahora = time.Now
	}
	return &Cache{
		ttl:      ttl,
		ahora:    ahora,
		entradas: make(map[string]entrada),
	}
}

// Clave arma la clave canónica operación+argumentos. Los argumentos se
// serializan a JSON; un tipo no serializable degrada a fmt.Sprintf, que sigue
// siendo determinístico para structs de filtros.
func Clave(operacion string, args any) string {
	b, err := json.Marshal(args)
	if err != nil {
		return operacion + "_" + fmt.Sprintf("%+v", args)
	}
	return operacion + "_" + string(b)
}

// Obtener devuelve el valor si existe y no expiró. Las entradas vencidas se
// eliminan en el acceso.
func (c *Cache) Obtener(clave string) (any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	e, ok := c.entradas[clave]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ahora().Sub(e.guardado) >= c.ttl {
		c.mu.Lock()
		delete(c.entradas, clave)
		c.mu.Unlock()
		return nil, false
	}
	return e.datos, true
}

// Guardar almacena el valor con el timestamp actual.
func (c *Cache) Guardar(clave string, datos any) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entradas[clave] = entrada{datos: datos, guardado: c.ahora()}
	c.mu.Unlock()
}

// Invalidar elimina toda clave que contenga el patrón. Patrón vacío vacía la
// cache completa. Cada operación de escritura invalida las claves lógicas que
// toca (ver casos de uso de stock y puntos).
func (c *Cache) Invalidar(patron string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if patron == "" {
		c.entradas = make(map[string]entrada)
		return
	}
	for k := range c.entradas {
		if strings.Contains(k, patron) {
			delete(c.entradas, k)
		}
	}
}
