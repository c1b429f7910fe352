package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// IniciarConfiguracion carga el archivo JSON de configuración sobre la
// estructura recibida. Los campos ausentes conservan el valor que ya traía
// la estructura, así el llamador puede pasar una configuración con defaults.
func IniciarConfiguracion(filePath string, config any) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("no se pudo abrir el archivo de configuración %s: %w", filePath, err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	if err := json.NewDecoder(configFile).Decode(config); err != nil {
		return fmt.Errorf("no se pudo decodificar el archivo de configuración %s: %w", filePath, err)
	}

	return nil
}
