// Package assistant is the operation dispatcher: named operations with flat
// argument maps, required-field validation at the boundary, and structured
// results. Handlers never panic; every failure becomes an error Result.
package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"motionsmith/internal/knowledge"
	"motionsmith/internal/logging"
)

// Operation names exposed by the dispatcher.
const (
	OpClassifyAndGenerate = "classify_and_generate"
	OpLookupReference     = "lookup_reference"
	OpDebugRequest        = "debug_request"
	OpOptimizeRequest     = "optimize_request"
	OpBuildPattern        = "build_pattern"
)

// Result is the structured outcome of one dispatched operation. Exactly one
// of Text or ErrMessage is meaningful, selected by IsError.
type Result struct {
	RequestID  string
	Operation  string
	Text       string
	IsError    bool
	ErrMessage string
}

func errorResult(requestID, op, msg string) Result {
	return Result{RequestID: requestID, Operation: op, IsError: true, ErrMessage: msg}
}

// operation binds argument constraints to a handler.
type operation struct {
	name     string
	required []string
	defaults map[string]string
	handler  func(d *Dispatcher, args map[string]string) (string, error)
}

// Dispatcher routes named operations to their handlers. It holds only
// read-only state (the knowledge table), so a single instance is safe for
// concurrent use.
type Dispatcher struct {
	ops   map[string]*operation
	table *knowledge.Table
}

// NewDispatcher builds a dispatcher over the embedded knowledge table.
func NewDispatcher() (*Dispatcher, error) {
	table, err := knowledge.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge table: %w", err)
	}

	d := &Dispatcher{
		ops:   make(map[string]*operation),
		table: table,
	}

	d.register(&operation{
		name:     OpClassifyAndGenerate,
		required: []string{"request"},
		defaults: map[string]string{"context": DefaultContext, "complexity": DefaultComplexity},
		handler:  (*Dispatcher).opGenerate,
	})
	d.register(&operation{
		name:     OpLookupReference,
		required: []string{"element_name"},
		defaults: map[string]string{"detail_level": DefaultDetailLevel},
		handler:  (*Dispatcher).opReference,
	})
	d.register(&operation{
		name:     OpDebugRequest,
		required: []string{"issue_description"},
		handler:  (*Dispatcher).opDebug,
	})
	d.register(&operation{
		name:     OpOptimizeRequest,
		required: []string{"source_code"},
		defaults: map[string]string{"target": DefaultTarget},
		handler:  (*Dispatcher).opOptimize,
	})
	d.register(&operation{
		name:     OpBuildPattern,
		required: []string{"pattern_type"},
		defaults: map[string]string{"category_label": DefaultCategoryLabel},
		handler:  (*Dispatcher).opPattern,
	})

	return d, nil
}

func (d *Dispatcher) register(op *operation) {
	d.ops[op.name] = op
}

// Operations returns the registered operation names, sorted.
func (d *Dispatcher) Operations() []string {
	names := make([]string, 0, len(d.ops))
	for name := range d.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch validates arguments and runs the named operation. Required
// arguments must be present and non-blank before any core logic runs;
// absent optional arguments receive their defaults.
func (d *Dispatcher) Dispatch(opName string, args map[string]string) Result {
	requestID := uuid.NewString()
	start := time.Now()

	log := logging.WithRequestID(logging.CategoryDispatch, requestID)
	log.Info("Dispatching %s", opName)

	op, ok := d.ops[opName]
	if !ok {
		msg := fmt.Sprintf("unknown operation %q (valid: %s)", opName, strings.Join(d.Operations(), ", "))
		logging.AuditDispatch(requestID, opName, false, time.Since(start), msg)
		return errorResult(requestID, opName, msg)
	}

	// Required-field validation happens before any classification/rendering.
	for _, field := range op.required {
		if strings.TrimSpace(args[field]) == "" {
			msg := fmt.Sprintf("missing required argument %q for %s", field, opName)
			log.Error("Validation failed: %s", msg)
			logging.AuditDispatch(requestID, opName, false, time.Since(start), msg)
			return errorResult(requestID, opName, msg)
		}
	}

	// Copy args so handlers never mutate caller state, then fill defaults.
	merged := make(map[string]string, len(args)+len(op.defaults))
	for k, v := range args {
		merged[k] = v
	}
	for k, v := range op.defaults {
		if strings.TrimSpace(merged[k]) == "" {
			merged[k] = v
		}
	}

	text, err := op.handler(d, merged)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("Operation failed: %v", err)
		logging.AuditDispatch(requestID, opName, false, elapsed, err.Error())
		return errorResult(requestID, opName, err.Error())
	}

	log.Info("Operation completed in %v", elapsed)
	logging.AuditDispatch(requestID, opName, true, elapsed, "")

	return Result{RequestID: requestID, Operation: opName, Text: text}
}
