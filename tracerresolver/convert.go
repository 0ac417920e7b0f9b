package tracerresolver

import (
	"fmt"

	"github.com/aalemi-dev/tracerresolver/discovery"
	"github.com/aalemi-dev/tracerresolver/tracer"
)

// convert feeds t through the converters in priority order. A failing
// converter keeps the current tracer; a nil result ends the chain with nil.
func (r *Resolver) convert(t tracer.Tracer) tracer.Tracer {
	current := t
	for _, c := range r.Candidates(discovery.KindConverter) {
		next, err := r.call(OperationConvert, discovery.KindConverter, c.Name, func() (tracer.Tracer, error) {
			conv, ok := c.Instance.(TracerConverter)
			if !ok {
				return nil, fmt.Errorf("%w: %T is not a %s", ErrCandidateType, c.Instance, discovery.KindConverter)
			}
			return conv.Convert(current)
		})
		if err != nil {
			r.log.Warn("tracer converter failed, keeping current tracer", err, map[string]interface{}{
				"name": c.Name,
				"type": typeName(current),
			})
			continue
		}
		if isNone(next) {
			r.log.Debug("tracer converter returned none, stopping", nil, map[string]interface{}{
				"name": c.Name,
				"from": typeName(current),
			})
			return nil
		}

		r.log.Debug("tracer converted", nil, map[string]interface{}{
			"name": c.Name,
			"from": typeName(current),
			"to":   typeName(next),
		})
		current = next
	}
	return current
}
