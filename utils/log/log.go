package log

import (
	"log/slog"
	"os"
	"strings"
)

// BuildLogger arma el logger de diagnóstico del módulo. Escribe JSON en stderr
// para no mezclarse con la salida de la simulación, que va por stdout.
func BuildLogger(level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     convertirNivel(level),
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, ops))
}

func convertirNivel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func StringAttr(key, value string) slog.Attr {
	return slog.String(key, value)
}

func IntAttr(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

func AnyAttr(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
