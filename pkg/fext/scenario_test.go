package fext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ib-77/fext/pkg/fext"
	"github.com/ib-77/fext/pkg/fext/future"
	"github.com/ib-77/fext/pkg/fext/option"
	"github.com/ib-77/fext/pkg/fext/result"
	"github.com/ib-77/fext/pkg/fext/try"
)

func TestScenario_AsyncOptionToUpper(t *testing.T) {
	t.Parallel()

	upper := cases.Upper(language.Und)
	o, err := option.MapAsync(future.Resolved(option.Some("Alice")), upper.String).Await()

	require.NoError(t, err)
	assert.Equal(t, option.Some("ALICE"), o)
}

func TestScenario_SelectOnErrorKeepsError(t *testing.T) {
	t.Parallel()

	r := result.Select(result.Error[int]("fail"), func(x int) int { return x + 5 })
	got := result.Match(r, func(x int) int { return x }, func(string) int { return -1 })

	assert.Equal(t, -1, got)
}

func TestScenario_QueryEqualsNestedBind(t *testing.T) {
	t.Parallel()

	query := result.SelectManyProject(result.Ok[int, string](2),
		func(int) result.Result[int, string] { return result.Ok[int, string](3) },
		func(a, b int) int { return a + b })

	nested := result.Bind(result.Ok[int, string](2), func(a int) result.Result[int, string] {
		return result.Map(result.Ok[int, string](3), func(b int) int { return a + b })
	})

	assert.Equal(t, nested, query)
	assert.Equal(t, result.Ok[int, string](5), query)
}

// A dashboard handler finds a results file by project name, reads it under
// Try and turns every failure into an ErrorResponse it can render.
func TestScenario_LookupReadParse(t *testing.T) {
	t.Parallel()

	files := map[string]string{"api": "42"}
	find := func(name string) option.Option[string] {
		return option.FirstOrNoneSlice([]string{"api", "web"}, func(n string) bool {
			_, ok := files[n]
			return ok && n == name
		})
	}
	read := func(name string) result.Result[string, fext.ErrorResponse] {
		attempt := try.Run(func() string {
			content, ok := files[name]
			if !ok {
				panic("unreadable " + name)
			}
			return content
		})
		return try.Match(attempt, result.Ok[string, fext.ErrorResponse],
			func(f try.Fault) result.Result[string, fext.ErrorResponse] {
				return result.Error[string](fext.ErrorResponse{Message: f.Message})
			})
	}
	notFound := func() fext.ErrorResponse { return fext.ErrorResponse{Message: "File not found"} }

	lookup := func(name string) string {
		r := result.Bind(option.ToResult(find(name), notFound), read)
		return result.Match(r,
			func(content string) string { return content },
			func(e fext.ErrorResponse) string { return e.Message })
	}

	assert.Equal(t, "42", lookup("api"))
	assert.Equal(t, "File not found", lookup("web"))
}

func TestScenario_AsyncChainShortCircuits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	called := false

	r, err := result.BindAsync(ctx,
		future.Resolved(result.Error[int]("outer")),
		func(v int) future.Future[result.Result[int, string]] {
			called = true
			return future.Resolved(result.Ok[int, string](v))
		}).Await()

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, result.Error[int]("outer"), r)
}
