// Package notify agrupa el envío de avisos fuera del ciclo de la petición:
// el despachador de tareas y el notificador por correo de órdenes.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// DefaultTaskTimeout límite de una tarea cuando no se configura otro.
const DefaultTaskTimeout = 30 * time.Second

// Observer recibe el resultado de cada tarea (métricas).
type Observer func(task string, err error, elapsed time.Duration)

// Dispatcher ejecuta tareas en goroutines con contexto propio y timeout.
// Los errores y pánicos se registran y nunca llegan al llamador.
type Dispatcher struct {
	log      *logger.Logger
	timeout  time.Duration
	observer Observer
	wg       sync.WaitGroup
}

// NewDispatcher construye el despachador. timeout <= 0 usa DefaultTaskTimeout.
func NewDispatcher(log *logger.Logger, timeout time.Duration, observer Observer) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	return &Dispatcher{log: log, timeout: timeout, observer: observer}
}

// Dispatch lanza la tarea y retorna de inmediato.
func (d *Dispatcher) Dispatch(name string, task func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		start := time.Now()
		err := safeRun(ctx, task)
		elapsed := time.Since(start)
		if err != nil {
			d.log.Error().Err(err).Str("task", name).Dur("elapsed", elapsed).Msg("tarea en segundo plano falló")
		} else {
			d.log.Debug().Str("task", name).Dur("elapsed", elapsed).Msg("tarea en segundo plano completada")
		}
		if d.observer != nil {
			d.observer(name, err, elapsed)
		}
	}()
}

// Wait espera a que terminen las tareas en curso o a que ctx expire.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func safeRun(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return task(ctx)
}
