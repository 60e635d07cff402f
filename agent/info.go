package agent

import (
	"context"
	"fmt"
)

// DescribePlace answers a "tell me about this place" question for the
// user's chosen destination. The answer is relayed verbatim.
func DescribePlace(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf(`Un usuario no vidente está visitando %s en %s.
Quiere saber más información sobre este lugar. Proporciónale una respuesta clara, interesante y útil.`, name, City)

	return complete(ctx, prompt, 1000)
}
