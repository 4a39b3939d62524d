package mapper

import (
	"io"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/surfaces/internal/classstack"
	"github.com/alexisbeaulieu97/surfaces/internal/logger"
	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
	"github.com/alexisbeaulieu97/surfaces/internal/ports"
)

// Result describes what ProcessElement did to one element.
type Result struct {
	// Applied holds the resolved classes, before merging with existing ones.
	Applied []string
	// Unknown lists marker tokens the table does not define, in marker order.
	Unknown []string
	// Skipped is set when the element had no usable marker.
	Skipped bool
}

// Report aggregates a batch run.
type Report struct {
	Processed []ports.Element
	Unknown   map[string]int
}

// Option customises a Processor.
type Option func(*settings)

type settings struct {
	cacheSize int
}

// WithCacheSize bounds the resolution cache. Zero or less disables caching.
func WithCacheSize(n int) Option {
	return func(s *settings) {
		s.cacheSize = n
	}
}

// Processor rewrites marker attributes into class lists.
type Processor struct {
	table    *mappings.Table
	log      *logger.Logger
	resolver *resolver
}

// diagnostics receives warnings when New is given no logger.
var diagnostics io.Writer = os.Stderr

// New builds a Processor over table. A nil table falls back to the built-in
// defaults. A nil logger falls back to warn-level output on stderr; pass
// logger.Nop() to silence diagnostics.
func New(table *mappings.Table, log *logger.Logger, opts ...Option) *Processor {
	if table == nil {
		table = mappings.Default()
	}
	if log == nil {
		log = fallbackLogger()
	}
	s := settings{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&s)
	}

	return &Processor{
		table:    table,
		log:      log.With("component", "mapper"),
		resolver: newResolver(table, s.cacheSize),
	}
}

func fallbackLogger() *logger.Logger {
	log, err := logger.New(logger.Options{Level: "warn", Writer: diagnostics})
	if err != nil {
		return logger.Nop()
	}
	return log
}

// Table returns the table the processor resolves against.
func (p *Processor) Table() *mappings.Table {
	return p.table
}

// ProcessElement translates the marker on el into classes. A missing or blank
// marker leaves the element untouched. Unknown keys are logged and skipped.
func (p *Processor) ProcessElement(el ports.Element, opts Options) Result {
	if el == nil {
		return Result{Skipped: true}
	}

	attr := opts.attribute()
	marker, ok := el.Attribute(attr)
	if !ok || strings.TrimSpace(marker) == "" {
		return Result{Skipped: true}
	}

	res := p.resolver.resolve(marker)
	for _, key := range res.unknown {
		p.log.Warn("unknown mapping", "key", key, "attribute", attr)
	}

	var existing []string
	if opts.preserveExisting() {
		class, _ := el.Attribute("class")
		existing = classstack.Fields(class)
	}
	el.SetAttribute("class", strings.Join(classstack.Merge(existing, res.classes), " "))

	if opts.RemoveAttribute {
		el.RemoveAttribute(attr)
	}

	return Result{
		Applied: append([]string(nil), res.classes...),
		Unknown: append([]string(nil), res.unknown...),
	}
}

// ProcessAll processes every marked element under opts.Root in document order
// and returns them.
func (p *Processor) ProcessAll(tree ports.Tree, opts Options) []ports.Element {
	return p.Apply(tree, opts).Processed
}

// Apply is ProcessAll with a tally of unknown keys.
func (p *Processor) Apply(tree ports.Tree, opts Options) Report {
	report := Report{Unknown: map[string]int{}}
	if tree == nil {
		return report
	}

	elements := tree.QueryAll(opts.Root, opts.attribute())
	report.Processed = make([]ports.Element, 0, len(elements))
	for _, el := range elements {
		result := p.ProcessElement(el, opts)
		for _, key := range result.Unknown {
			report.Unknown[key]++
		}
		report.Processed = append(report.Processed, el)
	}

	p.log.Debug("processed elements", "count", len(report.Processed), "unknown", len(report.Unknown))
	return report
}
