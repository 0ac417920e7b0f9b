package priority

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unannotated struct{ id string }

type prio struct {
	id string
	p  int
}

func (c prio) Priority() int { return c.p }

type panicky struct{}

func (panicky) Priority() int { panic("no priority for you") }

type annotatedA struct{}
type annotatedB struct{}

func ids(items []any) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case unannotated:
			out = append(out, v.id)
		case prio:
			out = append(out, v.id)
		case *annotatedA:
			out = append(out, "annotatedA")
		case *annotatedB:
			out = append(out, "annotatedB")
		case panicky:
			out = append(out, "panicky")
		}
	}
	return out
}

func TestPrioritize_UnannotatedSortLast(t *testing.T) {
	t.Parallel()
	in := []any{unannotated{"A"}, prio{"B", 5}, prio{"C", 1}}

	got := Prioritize(in, Default)

	assert.Equal(t, []string{"C", "B", "A"}, ids(got))
}

func TestPrioritize_StableForEqualKeys(t *testing.T) {
	t.Parallel()
	in := []any{
		unannotated{"u1"}, prio{"p1", 3}, unannotated{"u2"},
		prio{"p2", 3}, unannotated{"u3"}, prio{"p0", 0},
	}

	got := Prioritize(in, Default)

	assert.Equal(t, []string{"p0", "p1", "p2", "u1", "u2", "u3"}, ids(got))
}

func TestPrioritize_NegativeAndExplicitLowest(t *testing.T) {
	t.Parallel()
	in := []any{unannotated{"none"}, prio{"max", Lowest}, prio{"neg", -10}}

	got := Prioritize(in, Default)

	// An explicit Lowest ties with "no priority"; input order decides.
	assert.Equal(t, []string{"neg", "none", "max"}, ids(got))
}

func TestPrioritize_NilLookupReturnsInputUnchanged(t *testing.T) {
	t.Parallel()
	in := []any{unannotated{"A"}, prio{"B", 5}, prio{"C", 1}}

	got := Prioritize(in, nil)

	require.Len(t, got, 3)
	assert.Same(t, &in[0], &got[0])
	assert.Equal(t, []string{"A", "B", "C"}, ids(got))
}

func TestPrioritize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []any{unannotated{"A"}, prio{"C", 1}}

	_ = Prioritize(in, Default)

	assert.Equal(t, []string{"A", "C"}, ids(in))
}

func TestPrioritize_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Prioritize([]any{}, Default))
	assert.Nil(t, Prioritize[any](nil, Default))
}

func TestPrioritize_PanickingLookupTreatedAsAbsent(t *testing.T) {
	t.Parallel()
	boom := func(any) (int, bool) { panic("lookup unavailable") }
	in := []any{prio{"B", 5}, prio{"C", 1}}

	var got []any
	assert.NotPanics(t, func() { got = Prioritize(in, boom) })
	assert.Equal(t, []string{"B", "C"}, ids(got))
}

func TestDefault_PanickingPriorityMethod(t *testing.T) {
	t.Parallel()
	p, ok := Default(panicky{})
	assert.False(t, ok)
	assert.Zero(t, p)

	got := Prioritize([]any{panicky{}, prio{"C", 1}}, Default)
	assert.Equal(t, []string{"C", "panicky"}, ids(got))
}

func TestDefault_Nil(t *testing.T) {
	t.Parallel()
	_, ok := Default(nil)
	assert.False(t, ok)
}

func TestAnnotate(t *testing.T) {
	Annotate[*annotatedA](7)
	Annotate[*annotatedB](2)
	t.Cleanup(func() {
		RemoveAnnotation(reflect.TypeFor[*annotatedA]())
		RemoveAnnotation(reflect.TypeFor[*annotatedB]())
	})

	p, ok := Annotated(reflect.TypeFor[*annotatedA]())
	require.True(t, ok)
	assert.Equal(t, 7, p)

	got := Prioritize([]any{unannotated{"u"}, &annotatedA{}, &annotatedB{}}, Default)
	assert.Equal(t, []string{"annotatedB", "annotatedA", "u"}, ids(got))

	// Annotations are per concrete type: the value type is not annotated.
	_, ok = Default(annotatedA{})
	assert.False(t, ok)
}

func TestAnnotateType_NilIgnored(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { AnnotateType(nil, 1) })
}

func TestPrioritizeBy_UsesSubject(t *testing.T) {
	t.Parallel()
	type named struct {
		name  string
		value any
	}
	in := []named{{"a", unannotated{"A"}}, {"b", prio{"B", 5}}, {"c", prio{"C", 1}}}

	got := PrioritizeBy(in, func(n named) any { return n.value }, Default)

	names := []string{got[0].name, got[1].name, got[2].name}
	assert.Equal(t, []string{"c", "b", "a"}, names)
}

func TestOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Of(prio{"x", 3}, Default))
	assert.Equal(t, Lowest, Of(unannotated{"x"}, Default))
	assert.Equal(t, Lowest, Of(prio{"x", 3}, nil))
}
