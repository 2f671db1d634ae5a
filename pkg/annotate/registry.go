package annotate

import (
	"sync"

	"github.com/hintwire/hintwire/pkg/types"
	"github.com/rs/zerolog"
)

// Strategy attempts partial resolution of a TypeDescriptor shape. A
// (nil, nil) return means the strategy does not handle the descriptor and
// later strategies should be consulted. A non-nil error aborts resolution.
type Strategy func(TypeDescriptor) (types.Type, error)

// lookupEntry pairs a registered descriptor with its canonical type so
// diagnostics can name both sides.
type lookupEntry struct {
	desc TypeDescriptor
	typ  types.Type
}

// Registry resolves type annotations into canonical types. It holds an
// exact-match table consulted first and an ordered list of resolution
// strategies consulted on a table miss. The three built-in strategies
// (canonical passthrough, native scalar kind, generic/metadata shape) are
// installed at construction; user strategies registered later are always
// consulted after them.
//
// A Registry is expected to be populated at session initialization and
// read repeatedly during compilation. Registration concurrent with active
// resolution must be serialized by the caller. Resolution recursion depth
// equals the nesting depth of the annotation; self-referential descriptors
// are not guarded against.
type Registry struct {
	// mu protects lookup and strategies.
	mu sync.RWMutex

	// lookup maps descriptor keys to registered canonical types.
	lookup map[string]lookupEntry

	// strategies are the resolution strategies in priority order.
	strategies []Strategy

	// log is the injected logger.
	log zerolog.Logger
}

// NewRegistry creates a registry seeded with the primitive host classes
// (int, float, complex, str, bool, None) and the built-in strategies.
func NewRegistry(logger zerolog.Logger) *Registry {
	r := &Registry{
		lookup: make(map[string]lookupEntry),
		log:    logger,
	}

	seeds := []lookupEntry{
		{desc: ClassInt, typ: types.Int64},
		{desc: ClassFloat, typ: types.Float64},
		{desc: ClassComplex, typ: types.Complex128},
		{desc: ClassStr, typ: types.Str},
		{desc: ClassBool, typ: types.Bool},
		{desc: ClassNone, typ: types.None},
	}
	for _, s := range seeds {
		r.lookup[s.desc.Key()] = s
	}

	// Built-in strategy order is part of the contract: passthrough, then
	// native kinds, then generic/metadata shapes. User strategies append
	// after these.
	r.strategies = []Strategy{
		r.inferCanonical,
		r.inferNativeKind,
		r.inferGeneric,
	}

	return r
}

// Register installs an exact-match entry mapping desc to ct, overwriting
// any prior entry for the same descriptor. The canonical type must be a
// valid node; passing an invalid one is a programmer error reported as a
// TypingError.
func (r *Registry) Register(desc TypeDescriptor, ct types.Type) error {
	if desc == nil {
		return NewTypingError("cannot register a nil descriptor", nil)
	}
	if err := types.Validate(ct); err != nil {
		return WrapTypingError("register requires a valid canonical type", desc, err)
	}

	r.mu.Lock()
	r.lookup[desc.Key()] = lookupEntry{desc: desc, typ: ct}
	r.mu.Unlock()

	r.log.Debug().
		Str("descriptor", desc.String()).
		Str("type", ct.String()).
		Msg("Registered exact-match annotation")
	return nil
}

// RegisterStrategy appends a resolution strategy to the end of the
// strategy list. Strategies registered earlier are consulted first; all
// user strategies run after the built-ins.
func (r *Registry) RegisterStrategy(s Strategy) error {
	if s == nil {
		return NewTypingError("cannot register a nil strategy", nil)
	}

	r.mu.Lock()
	r.strategies = append(r.strategies, s)
	n := len(r.strategies)
	r.mu.Unlock()

	r.log.Debug().Int("priority", n).Msg("Registered resolution strategy")
	return nil
}

// TryInfer resolves desc to a canonical type without failing on an
// unresolvable annotation: a (nil, nil) return means no exact-match entry
// and no strategy handled the descriptor. Malformed annotations and
// strategy contract violations still return a TypingError.
func (r *Registry) TryInfer(desc TypeDescriptor) (types.Type, error) {
	if desc == nil {
		return nil, NewTypingError("cannot resolve a nil descriptor", nil)
	}

	// Snapshot under the read lock, then release before running
	// strategies: strategies recurse back into the registry.
	r.mu.RLock()
	entry, found := r.lookup[desc.Key()]
	strategies := make([]Strategy, len(r.strategies))
	copy(strategies, r.strategies)
	r.mu.RUnlock()

	if found {
		r.log.Debug().
			Str("descriptor", desc.String()).
			Str("type", entry.typ.String()).
			Msg("Resolved annotation from exact-match table")
		return entry.typ, nil
	}

	for i, strategy := range strategies {
		result, err := strategy(desc)
		if err != nil {
			if IsTypingError(err) {
				return nil, err
			}
			return nil, WrapTypingError("resolution strategy failed", desc, err)
		}
		if result == nil {
			continue
		}
		if verr := types.Validate(result); verr != nil {
			return nil, WrapTypingError(
				"resolution strategy returned a value that is not a canonical type",
				desc, verr)
		}
		r.log.Debug().
			Str("descriptor", desc.String()).
			Str("type", result.String()).
			Int("strategy", i).
			Msg("Resolved annotation via strategy")
		return result, nil
	}

	return nil, nil
}

// Infer resolves desc to a canonical type, failing with a TypingError
// when the annotation is unresolvable. This is the primary entry point.
func (r *Registry) Infer(desc TypeDescriptor) (types.Type, error) {
	result, err := r.TryInfer(desc)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, NewTypingError("cannot infer a canonical type for annotation", desc)
	}
	return result, nil
}
