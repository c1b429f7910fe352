package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantumDesdeFlag(t *testing.T) {
	tests := []struct {
		name    string
		valor   uint64
		want    uint32
		wantErr bool
	}{
		{name: "mínimo", valor: 1, want: 1},
		{name: "máximo del reloj", valor: math.MaxUint32, want: math.MaxUint32},
		{name: "cero", valor: 0, wantErr: true},
		{name: "justo afuera del reloj", valor: math.MaxUint32 + 1, wantErr: true},
		// Sin el chequeo de rango este valor se angostaría en silencio a 5.
		{name: "truncado daría otro quantum", valor: math.MaxUint32 + 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ass := assert.New(t)

			got, err := quantumDesdeFlag(tt.valor)
			if tt.wantErr {
				ass.Error(err)
				return
			}
			ass.NoError(err)
			ass.Equal(tt.want, got)
		})
	}
}
