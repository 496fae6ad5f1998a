// Package ui coordinates transient console state on a live document:
// modals, the toast, dropdowns, the sidebar and chart canvases.
package ui

import (
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/ui/chart"
)

const (
	// DefaultToastDuration is how long a toast stays visible after its last activation.
	DefaultToastDuration = 3000 * time.Millisecond
	// DefaultSidebarBreakpoint is the widest viewport treated as narrow.
	DefaultSidebarBreakpoint = 992
)

// Prompter answers blocking yes/no confirmations.
type Prompter interface {
	Confirm(message string) bool
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(message string) bool

// Confirm implements Prompter.
func (f PrompterFunc) Confirm(message string) bool { return f(message) }

// Options configures a Coordinator.
type Options struct {
	Logger            *zap.Logger
	Scheduler         Scheduler
	Renderer          chart.Renderer
	ToastDuration     time.Duration
	SidebarBreakpoint int
	// Locker serialises timer callbacks with the owner's event handling.
	Locker sync.Locker
	// ChartSource builds the image URL shown inside a rendered canvas.
	ChartSource func(canvasID string, revision int) string
}

// Coordinator owns transient UI state for one document. It is not safe for
// concurrent use; callers serialise access (see Options.Locker).
type Coordinator struct {
	doc     *goquery.Document
	logger  *zap.Logger
	sched   Scheduler
	render  chart.Renderer
	locker  sync.Locker
	source  func(string, int) string
	toastIn time.Duration
	narrow  int

	modals map[string]*modalState
	charts map[string]*chartSlot

	toast      ToastState
	toastTimer Timer
}

// NewCoordinator binds a coordinator to doc.
func NewCoordinator(doc *goquery.Document, opts Options) *Coordinator {
	c := &Coordinator{
		doc:     doc,
		logger:  observability.OrNop(opts.Logger).Named("ui"),
		sched:   opts.Scheduler,
		render:  opts.Renderer,
		locker:  opts.Locker,
		source:  opts.ChartSource,
		toastIn: opts.ToastDuration,
		narrow:  opts.SidebarBreakpoint,
		modals:  make(map[string]*modalState),
		charts:  make(map[string]*chartSlot),
	}
	if c.sched == nil {
		c.sched = SystemScheduler()
	}
	if c.render == nil {
		c.render = chart.NewGoChartRenderer()
	}
	if c.toastIn <= 0 {
		c.toastIn = DefaultToastDuration
	}
	if c.narrow <= 0 {
		c.narrow = DefaultSidebarBreakpoint
	}
	return c
}

// Document returns the live document.
func (c *Coordinator) Document() *goquery.Document {
	return c.doc
}

func (c *Coordinator) locked(fn func()) {
	if c.locker != nil {
		c.locker.Lock()
		defer c.locker.Unlock()
	}
	fn()
}

func (c *Coordinator) warnMissing(kind, id string) {
	c.logger.Warn("element not found", zap.String("kind", kind), zap.String("id", id))
}
