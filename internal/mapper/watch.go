package mapper

import (
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/surfaces/internal/ports"
)

// Init processes the current tree and, unless opts.DisableAutoProcess is set, watches for
// inserted elements. The returned teardown stops the watcher for good; calling
// it more than once is harmless.
func (p *Processor) Init(tree ports.Tree, notifier ports.Notifier, opts Options) (func(), error) {
	if tree == nil {
		return nil, errors.New("mapper: nil tree")
	}

	p.ProcessAll(tree, opts)

	if !opts.autoProcess() {
		return func() {}, nil
	}
	if notifier == nil {
		return nil, errors.New("mapper: auto processing requires a notifier")
	}

	sub, err := notifier.ObserveInsertions(func(records []ports.MutationRecord) {
		p.handleInsertions(tree, records, opts)
	})
	if err != nil {
		return nil, err
	}
	p.log.Debug("watching insertions", "attribute", opts.attribute())

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.Unsubscribe()
			p.log.Debug("stopped watching insertions")
		})
	}, nil
}

func (p *Processor) handleInsertions(tree ports.Tree, records []ports.MutationRecord, opts Options) {
	attr := opts.attribute()
	for _, record := range records {
		for _, node := range record.Added {
			el, ok := node.Element()
			if !ok {
				continue
			}
			if _, marked := el.Attribute(attr); marked {
				p.ProcessElement(el, opts)
			}
			for _, child := range tree.QueryAll(el, attr) {
				p.ProcessElement(child, opts)
			}
		}
	}
}
