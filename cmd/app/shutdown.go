package main

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// stopStep останавливает одну часть приложения, уважая дедлайн ctx.
type stopStep struct {
	name string
	stop func(ctx context.Context) error
}

// shutdown выполняет шаги строго по порядку: сначала источники запросов (бот, HTTP),
// потом то, чем они пользуются (резолвер). Ошибка шага не прерывает остальные.
func shutdown(timeout time.Duration, steps ...stopStep) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error

	for _, step := range steps {
		if err := step.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
		}
	}

	return errors.Join(errs...)
}
