// Package logger construye el logger estructurado del servicio sobre zerolog.
// En development la salida es consola legible; en cualquier otro entorno es
// JSON por stdout, pensado para el recolector de logs.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config formato y verbosidad del logger, leídos de la configuración (APP_ENV
// y LOG_LEVEL).
type Config struct {
	Env   string // development | staging | production
	Level string // trace|debug|info|warn|error; vacío o desconocido cae en info
}

// Logger envuelve zerolog detrás de un tipo propio para inyección.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger del servicio y reapunta el logger global de zerolog,
// así las librerías que loguean vía log.Logger comparten destino y nivel.
func New(cfg Config) *Logger {
	zl := zerolog.New(destino(cfg.Env)).
		Level(nivelDesde(cfg.Level)).
		With().
		Timestamp().
		Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func destino(env string) io.Writer {
	if env == "development" {
		return zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return os.Stdout
}

// nivelDesde traduce el nivel configurado. Un valor no reconocido deja el
// nivel en info en vez de frenar el arranque por un typo en el env.
func nivelDesde(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno para quien necesite la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
