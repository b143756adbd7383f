package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/protocols/internal/counter"
)

func (r *Runner) counters(context.Context) error {
	p := r.out
	p.heading("Optional requirements")
	c := &counter.Counter{DataSource: counter.ThreeSource{}}
	for i := 0; i < 4; i++ {
		c.Increment()
		p.printf(" %d\n", c.Count)
	}

	p.heading("More complex data source")
	c.Count = -4
	c.DataSource = counter.TowardsZeroSource{}
	for i := 0; i < 5; i++ {
		c.Increment()
		p.printf(" %d\n", c.Count)
	}
	return nil
}

func (r *Runner) scriptedCounters(context.Context) error {
	if r.scripts == nil || len(r.counterKeys) == 0 {
		return nil
	}
	p := r.out
	p.heading("Scripted data sources")
	for _, key := range r.counterKeys {
		src := counter.NewLuaSource(r.scripts, key)
		c := &counter.Counter{Count: -4, DataSource: src}
		p.printf(" %s from %d:", src.Name(), c.Count)
		for i := 0; i < 5; i++ {
			c.Increment()
			p.printf(" %d", c.Count)
		}
		p.println()
		r.logger.Debug("scripted counter finished", zap.String("script", key), zap.Int("count", c.Count))
	}
	return nil
}
