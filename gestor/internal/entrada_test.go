package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func escribirTanda(t *testing.T, contenido string) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "procesos.txt")
	if err := os.WriteFile(ruta, []byte(contenido), 0o644); err != nil {
		t.Fatalf("no se pudo escribir la tanda de prueba: %v", err)
	}
	return ruta
}

func TestCargarProgramas(t *testing.T) {
	tests := []struct {
		name      string
		contenido string
		want      []*Programa
	}{
		{
			name:      "tanda completa",
			contenido: "0 P1 10 600\n2 P2 5 400\n7 P3 1 100\n",
			want: []*Programa{
				{Nombre: "P1", Llegada: 0, Servicio: 10, Memoria: 600},
				{Nombre: "P2", Llegada: 2, Servicio: 5, Memoria: 400},
				{Nombre: "P3", Llegada: 7, Servicio: 1, Memoria: 100},
			},
		},
		{
			name:      "ignora líneas en blanco",
			contenido: "\n0 P1 10 600\n\n   \n3 P2 2 100\n",
			want: []*Programa{
				{Nombre: "P1", Llegada: 0, Servicio: 10, Memoria: 600},
				{Nombre: "P2", Llegada: 3, Servicio: 2, Memoria: 100},
			},
		},
		{
			name:      "corta en la primera línea inválida",
			contenido: "0 P1 10 600\nbasura\n3 P2 2 100\n",
			want: []*Programa{
				{Nombre: "P1", Llegada: 0, Servicio: 10, Memoria: 600},
			},
		},
		{
			name:      "rechaza el servicio cero",
			contenido: "0 P1 0 600\n1 P2 5 100\n",
			want:      nil,
		},
		{
			name:      "rechaza el nombre demasiado largo",
			contenido: "0 NOMBREMUYLARGO 10 600\n",
			want:      nil,
		},
		{
			name:      "rechaza la llegada negativa",
			contenido: "-1 P1 10 600\n",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ass := assert.New(t)

			config := DefaultConfig()
			s, _, _ := armarService(t, config, nil)

			err := s.CargarProgramas(escribirTanda(t, tt.contenido))
			ass.NoError(err)
			ass.Equal(tt.want, s.programas)
		})
	}
}

func TestCargarProgramasArchivoInexistente(t *testing.T) {
	ass := assert.New(t)

	config := DefaultConfig()
	s, _, _ := armarService(t, config, nil)

	err := s.CargarProgramas(filepath.Join(t.TempDir(), "no-existe.txt"))
	ass.Error(err)
	ass.ErrorIs(err, os.ErrNotExist)
}
