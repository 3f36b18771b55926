package mobile

import "context"

// EventKind tipo de evento del sistema operativo.
type EventKind int

const (
	EventResume EventKind = iota + 1
	EventPause
	EventDeepLink
	EventBack
)

func (k EventKind) String() string {
	switch k {
	case EventResume:
		return "resume"
	case EventPause:
		return "pause"
	case EventDeepLink:
		return "deeplink"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// Event evento entregado por la capa nativa.
type Event struct {
	Kind      EventKind
	URL       string // EventDeepLink
	CanGoBack bool   // EventBack
}

// Run despacha eventos hasta que ctx se cancela o el canal se cierra.
// Los fallos de OnResume ya se informaron a la UI; el bucle sigue vivo.
func (h *Host) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h.dispatch(ctx, ev)
		}
	}
}

func (h *Host) dispatch(ctx context.Context, ev Event) {
	h.log.Debug().Str("event", ev.Kind.String()).Msg("evento del sistema")
	switch ev.Kind {
	case EventResume:
		if err := h.OnResume(ctx); err != nil {
			h.log.Error().Err(err).Msg("reanudación fallida")
		}
	case EventDeepLink:
		h.OnDeepLink(ev.URL)
	case EventBack:
		h.OnBackButton(ctx, ev.CanGoBack)
	case EventPause:
		// El servidor sigue activo en segundo plano.
	}
}
