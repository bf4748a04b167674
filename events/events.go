package events

import (
	"fmt"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"go.uber.org/zap"
)

type (
	Processor struct {
		// Internal channel for events
		ec chan (Event)
		// Channel to recieve 'stop' and confirm it
		sc chan (bool)
		// IsVerbose indicates whether this instance will process events marked as Verbose
		IsVerbose bool
		l         *zap.Logger
		// onClose runs after the processing routine exited
		onClose func() error
	}

	Event struct {
		// Level indicates the way to process Event
		Level Level
		// Source in most cases will be printed out in logs at the beginning of each record
		Source string
		// Verbose is useful to avoid unnecessary fuzz in logs (in case sender don't filter events on the source)
		Verbose bool
		// Data should contain payload of error or string
		Data interface{}
	}

	EventProcessor interface {
		// Send message that should be processed at any circumstances
		Send(Level, string, interface{})
		// Send message that should be ignored in case verbosity is set to false
		SendVerbose(Level, string, interface{})
		// Signal EventProcessor that there will be no events anymore
		Close()
	}
)

// NewZapProcessor creates processor that logs to l and starts its routine
func NewZapProcessor(l *zap.Logger, isVerbose bool) (p *Processor) {
	p = new(Processor)
	p.ec = make(chan Event)
	p.sc = make(chan bool)
	p.IsVerbose = isVerbose
	p.l = l

	go p.process()

	return
}

// Send sends message marked as non-verbose
func (p *Processor) Send(l Level, es string, data interface{}) {
	p.ec <- Event{Level: l, Source: es, Verbose: false, Data: data}
}

// SendVerbose sends message marked as verbose that will be treated accordingly to IsVerbose property of the Processor
func (p *Processor) SendVerbose(l Level, es string, data interface{}) {
	p.ec <- Event{Level: l, Source: es, Verbose: true, Data: data}
}

// Close stops processing routine and waits for it to exit. Processor must not be used after Close
func (p *Processor) Close() {
	p.sc <- true
	<-p.sc
	_ = p.l.Sync()
	if p.onClose != nil {
		_ = p.onClose()
	}
}

// process logs events until stop is recieved
//
// If event is verbose and p.IsVerbose = false, process will skip that event
func (p *Processor) process() {
	defer func() { p.sc <- true }()

	for {
		select {
		case event := <-p.ec:
			if !event.Level.CheckEventLevel() {
				p.l.Error("[EventProcessor] error -> illegal event level", zap.String("level", event.Level.String()))
				continue
			}
			if !p.IsVerbose && event.Verbose {
				continue
			}
			p.Log(event)
		case stop, ok := <-p.sc:
			if !ok || stop {
				return
			}
		}
	}
}

func (p *Processor) Log(event Event) {
	lvl := event.Level.ZapLevel()
	fields := []zap.Field{zap.String("source", event.Source)}
	if event.Level == Fatal {
		fields = append(fields, zap.Bool("fatal", true))
	}

	switch data := event.Data.(type) {
	case error:
		if event.Level < Warn {
			p.l.Error("[EventProcessor] error -> event type & level mismatch: wanted Warn or above, got less", zap.Error(data))
			return
		}
		fields = append(fields, zap.String("kind", syncerr.KindOf(data).String()), zap.Error(data))
		if ce := p.l.Check(lvl, fmt.Sprintf("[%s] %v", event.Source, data)); ce != nil {
			ce.Write(fields...)
		}
	case string:
		if ce := p.l.Check(lvl, fmt.Sprintf("[%s] %s", event.Source, data)); ce != nil {
			ce.Write(fields...)
		}
	default:
		p.l.Error("[EventProcessor] error -> wrong event payload type: 'error' or 'string' only")
	}
}
