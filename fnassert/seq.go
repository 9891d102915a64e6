package fnassert

import "github.com/vd09-projects/go-fnassert/check"

// Seq is an ordered sequence of nodes. A field check on a Seq succeeds if any
// element passes it; each field is matched independently, so a name and a body
// may be satisfied by different elements.
type Seq[T HasFn] []T

func (s Seq[T]) Assert() AssertFn { return New(s) }

func (s Seq[T]) HasName(name string) check.Result {
	return s.any(FieldName, func(n T) check.Result { return n.HasName(name) })
}

func (s Seq[T]) HasVisibility(vis Visibility) check.Result {
	return s.any(FieldVisibility, func(n T) check.Result { return n.HasVisibility(vis) })
}

func (s Seq[T]) HasAttrs(attrs []string) check.Result {
	return s.any(FieldAttrs, func(n T) check.Result { return n.HasAttrs(attrs) })
}

func (s Seq[T]) HasBody(body Body) check.Result {
	return s.any(FieldBody, func(n T) check.Result { return n.HasBody(body) })
}

func (s Seq[T]) any(field string, fn func(T) check.Result) check.Result {
	if len(s) == 0 {
		return check.Missing(field)
	}
	results := make([]check.Result, 0, len(s))
	for _, n := range s {
		r := fn(n)
		if r.Bool() {
			return r
		}
		results = append(results, r)
	}
	return check.Any(results...)
}
