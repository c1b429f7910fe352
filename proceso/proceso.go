package main

import (
	"flag"
	stdlog "log"
	"os"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// El gestor lanza este binario con el nombre del programa como único
// argumento y se comunica por los canales estándar. Todo lo demás va por
// señales, así que acá no hay servidor ni bucle propio: Correr maneja todo.
func main() {
	verbose := flag.Bool("v", false, "loguea cada intercambio por stderr")
	flag.Parse()

	if flag.NArg() < 1 {
		stdlog.Fatal("falta el nombre del programa")
	}

	nivel := "error"
	if *verbose {
		nivel = "debug"
	}

	t := NewTrabajador(flag.Arg(0), os.Stdin, os.Stdout, log.BuildLogger(nivel))
	if err := t.Correr(); err != nil {
		t.Log.Error("el trabajador salió con error", log.ErrAttr(err))
		os.Exit(1)
	}
}
