// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"
)

type displayWriter struct {
	plan    Plan
	clients map[string]EndpointClient
}

func New(plan Plan, clients map[string]EndpointClient) Writer {
	return &displayWriter{
		plan:    plan,
		clients: clients,
	}
}

// WriteDisplay writes bits to every target. A failing target does not stop
// the others; all failures are reported together.
func (w *displayWriter) WriteDisplay(bits uint32) error {
	var errs []string

	for _, tgt := range w.plan.Targets {
		cli := w.clients[tgt.Endpoint]
		if cli == nil {
			errs = append(errs, fmt.Sprintf(
				"writer: missing client for endpoint %s",
				tgt.Endpoint,
			))
			continue
		}

		if err := cli.WriteDisplay(tgt.UnitID, tgt.Address, bits); err != nil {
			errs = append(errs, fmt.Sprintf(
				"writer: ep=%s unit=%d addr=%d err=%v",
				tgt.Endpoint, tgt.UnitID, tgt.Address, err,
			))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}

	return nil
}
