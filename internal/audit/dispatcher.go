package audit

import (
	"go.uber.org/zap"

	"github.com/ynz20/AppPerruqueriaApi/internal/logger"
)

type Event struct {
	UserDNI  *string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserDNI,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Log.Error("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviat
	default:
		// cua plena: descartem l'esdeveniment abans que bloquejar l'API
		logger.SLog.Warn("audit queue full, dropping event")
	}
}
