package proceso

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// El binario de test se relanza a sí mismo como proceso trabajador cuando la
// variable de entorno está presente, igual que hace el binario proceso real.
const ayudanteEnv = "GESTOR_PROCESO_AYUDANTE"

func TestMain(m *testing.M) {
	switch os.Getenv(ayudanteEnv) {
	case "ok":
		ayudante(false)
		os.Exit(0)
	case "eco-roto":
		ayudante(true)
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// ayudante replica el protocolo del trabajador: eco del byte bajo del tiempo,
// detención real ante SIGTSTP y resultado sha256 ante SIGTERM.
func ayudante(ecoRoto bool) {
	nombre := os.Args[1]

	senales := make(chan os.Signal, 1)
	signal.Notify(senales, syscall.SIGTSTP, syscall.SIGCONT, syscall.SIGTERM)

	resumen := sha256.New()
	resumen.Write([]byte(nombre))

	buf := make([]byte, 4)
	leer := func() {
		if _, err := io.ReadFull(os.Stdin, buf); err != nil {
			os.Exit(1)
		}
		resumen.Write(buf)
	}
	responder := func() {
		eco := buf[3]
		if ecoRoto {
			eco = ^eco
		}
		if _, err := os.Stdout.Write([]byte{eco}); err != nil {
			os.Exit(1)
		}
	}

	leer()
	responder()

	for senal := range senales {
		switch senal {
		case syscall.SIGTSTP:
			leer()
			_ = syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
		case syscall.SIGCONT:
			leer()
			responder()
		case syscall.SIGTERM:
			leer()
			_, _ = io.WriteString(os.Stdout, hex.EncodeToString(resumen.Sum(nil)))
			os.Exit(0)
		}
	}
}

func resultadoEsperado(nombre string, tiempos []uint32) string {
	resumen := sha256.New()
	resumen.Write([]byte(nombre))
	for _, tiempo := range tiempos {
		resumen.Write([]byte{byte(tiempo >> 24), byte(tiempo >> 16), byte(tiempo >> 8), byte(tiempo)})
	}
	return hex.EncodeToString(resumen.Sum(nil))
}

func TestConexionCicloCompleto(t *testing.T) {
	t.Setenv(ayudanteEnv, "ok")
	ass := assert.New(t)

	c := NewConexion(os.Args[0], "PTEST", log.BuildLogger("error"))
	ass.False(c.Iniciada())

	require.NoError(t, c.Iniciar(0))
	ass.True(c.Iniciada())

	// Un quantum sin suspensión: solo se comunica el nuevo tiempo.
	require.NoError(t, c.Continuar(3))

	// Expropiación: Detener vuelve recién cuando el hijo está detenido.
	require.NoError(t, c.Detener(6))
	require.NoError(t, c.Continuar(9))

	resultado, err := c.Terminar(12)
	require.NoError(t, err)
	ass.Len(resultado, LargoResultado)
	ass.Equal(resultadoEsperado("PTEST", []uint32{0, 3, 6, 9, 12}), resultado)
}

func TestConexionEcoInvalido(t *testing.T) {
	t.Setenv(ayudanteEnv, "eco-roto")

	c := NewConexion(os.Args[0], "PMAL", log.BuildLogger("error"))
	err := c.Iniciar(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEcoInvalido)

	c.Abortar()
}

func TestConexionBinarioInexistente(t *testing.T) {
	c := NewConexion("/bin/que-no-existe", "PNADA", log.BuildLogger("error"))
	err := c.Iniciar(0)
	assert.Error(t, err)
}
