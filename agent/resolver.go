package agent

import (
	"context"
	"fmt"
)

// noDestination is the sentinel the model is told to answer with. It is
// confined to this file; callers get a typed (name, ok) result.
const noDestination = "NO_DESTINO"

const destinationPrompt = `Un usuario no vidente está buscando un destino turístico o una dirección en la ciudad de %s.

El destino solicitado debe ser una ubicación válida dentro de la ciudad. Puede ser:
- Una calle con numeración (Ejemplo: "Av. Sarmiento 800").
- Una intersección de calles (Ejemplo: "Esquina de Av. Mitre y 24 de Septiembre").
- Un lugar puntual conocido dentro de la ciudad (Ejemplo: "Plaza Urquiza", "Casa Histórica de Tucumán").
- Coordenadas dentro de la ciudad.

**⚠️ Importante:** Si el mensaje menciona un lugar fuera de la ciudad, o si el destino no es claro, responde exactamente con "NO_DESTINO".

Mensaje: "%s"`

// DetectDestination extracts a destination name from a free-form message.
// ok=false means the model found no valid destination in the service city.
func DetectDestination(ctx context.Context, message string) (string, bool, error) {
	content, err := complete(ctx, fmt.Sprintf(destinationPrompt, City, message), 30)
	if err != nil {
		return "", false, err
	}

	if content == noDestination || len(content) == 0 {
		return "", false, nil
	}

	return content, true, nil
}
