package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/saylorsolutions/sigs"
	"github.com/saylorsolutions/sigs/internal/cli"
	"github.com/saylorsolutions/sigs/mapper"
	"github.com/saylorsolutions/sigs/metrics"
	"github.com/saylorsolutions/sigs/observer"
	flag "github.com/spf13/pflag"
)

type button struct {
	clicked sigs.Signal[sigs.None]
}

func (b *button) click() {
	b.clicked.Invoke(sigs.None{})
}

// setAction replaces any previous action.
func (b *button) setAction(fn func()) {
	b.clicked.Clear()
	b.clicked.Connect(func(sigs.None) { fn() })
}

func (b *button) clickedSignal() *sigs.Interface[sigs.None] {
	return b.clicked.Interface()
}

func runButton(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	var btn button
	btn.setAction(func() { p.Println("fn: clicked") })
	log.Debug("Clicking button", "action", "fn")
	btn.click()

	btn.setAction(func() { p.Println("fn2: clicked") })
	log.Debug("Clicking button", "action", "fn2")
	btn.click()
	return nil
}

func runInterface(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	var btn button
	btn.clickedSignal().Connect(func(sigs.None) { p.Println("direct fn") })
	btn.clickedSignal().Connect(func(sigs.None) { p.Println("direct fn 2") })

	conn := btn.clickedSignal().Connect(func(sigs.None) { p.Println("you won't see me") })
	conn.Disconnect()
	log.Debug("Disconnected slot", "connected", conn.Connected())

	btn.click()
	return nil
}

type calculator struct {
	execute sigs.ReturnSignal[sigs.None, int]
}

func (c *calculator) run(p *cli.Printer) {
	p.Println("Calculating..")
	sum := 0
	c.execute.InvokeReduce(func(retVal int) {
		p.Println("Incoming value:", retVal)
		sum += retVal
	}, sigs.None{})
	p.Println("Sum of calculation:", sum)
}

func runCalculator(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	var calc calculator
	sig := calc.execute.Interface()
	sig.Connect(func(sigs.None) int { return 42 })
	sig.Connect(func(sigs.None) int { return 2 })
	log.Debug("Running calculator", "slots", calc.execute.Size())
	calc.run(p)
	return nil
}

const (
	clickedKey = "clicked"
	focusedKey = "focused"
)

type mappedButton struct {
	signals *mapper.Mapper
}

func newMappedButton(log *slog.Logger) *mappedButton {
	b := &mappedButton{signals: mapper.New(mapper.WithLogger(log))}
	mapper.Add[sigs.None](b.signals, clickedKey)
	mapper.Add[sigs.None](b.signals, focusedKey)
	return b
}

func (b *mappedButton) click() error {
	if err := mapper.Invoke(b.signals, clickedKey, sigs.None{}); err != nil {
		return err
	}
	return mapper.Invoke(b.signals, focusedKey, sigs.None{})
}

func (b *mappedButton) setAction(key string, fn func()) {
	sig := mapper.Signal[sigs.None](b.signals, key)
	sig.Clear()
	sig.Connect(func(sigs.None) { fn() })
}

func runMapper(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	btn := newMappedButton(log)
	btn.setAction(clickedKey, func() { p.Println("fn: clicked") })
	btn.setAction(focusedKey, func() { p.Println("fn: focused") })
	if err := btn.click(); err != nil {
		return err
	}

	btn.setAction(clickedKey, func() { p.Println("fn2: clicked") })
	btn.setAction(focusedKey, func() { p.Println("fn2: focused") })
	return btn.click()
}

func runBlocker(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	var btn button
	btn.setAction(func() { p.Println("clicked") })
	btn.click()

	blocker := sigs.Block(&btn.clicked)
	log.Debug("Blocked button", "blocked", btn.clicked.Blocked())
	p.Println("blocked:", btn.clicked.Blocked())
	btn.click()
	blocker.Release()

	p.Println("blocked:", btn.clicked.Blocked())
	btn.click()
	return nil
}

func runObserve(_ *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := observer.NewSubject(ctx, 0)
	applied := make(chan struct{})
	subject.Observe(func(newVal int) {
		p.Println("value changed:", newVal)
		applied <- struct{}{}
	})
	for i := 1; i <= 3; i++ {
		log.Debug("Setting value", "value", i)
		subject.Set(i)
		<-applied
	}
	p.Println("final value:", subject.Get())
	return nil
}

func runMetrics(flags *flag.FlagSet, p *cli.Printer, log *slog.Logger) error {
	clicks := cli.MustGet(flags.GetInt("clicks"))
	if clicks < 0 {
		return cli.NewUsageError("clicks must not be negative")
	}
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(metrics.WithRegistry(registry), metrics.WithNamespace("demo"))

	var btn button
	btn.setAction(func() {})
	metrics.Watch(collector, clickedKey, &btn.clicked)
	for i := 0; i < clicks; i++ {
		btn.click()
	}

	families, err := registry.Gather()
	if err != nil {
		return err
	}
	log.Debug("Gathered metrics", "families", len(families))
	var buf strings.Builder
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return err
		}
	}
	p.Print(buf.String())
	return nil
}
