package try

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TryTestSuite struct {
	suite.Suite
}

func TestTry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fext.try")
	defer teardown()
	suite.Run(t, new(TryTestSuite))
}

func (s *TryTestSuite) TestRun_CapturesSuccess() {
	r := Run(func() int { return 42 })

	s.True(r.IsSuccess())
	s.False(r.IsFailure())
	s.Equal(42, Match(r, func(v int) int { return v }, func(Fault) int { return -1 }))
	s.Equal("Success(42)", r.String())
}

func (s *TryTestSuite) TestRun_CapturesPanic() {
	boom := errors.New("boom")

	var r Try[int]
	s.NotPanics(func() {
		r = Run(func() int { panic(boom) })
	})

	s.True(r.IsFailure())
	f := Match(r, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.ErrorIs(f, boom)
	s.Equal("*errors.errorString", f.Type)
	s.Equal("boom", f.Message)
	s.NotEqual(uuid.Nil, f.ID)
	s.False(f.CapturedAt.IsZero())
	s.Empty(f.Stack)
}

func (s *TryTestSuite) TestRun_CapturesNonErrorPanic() {
	r := Run(func() string { panic("not an error") })

	f := Match(r, func(string) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.Equal("string", f.Type)
	s.Equal("not an error", f.Message)
	s.Nil(f.Unwrap())
	s.Equal("string: not an error", f.Error())
}

func (s *TryTestSuite) TestRun_CapturesRuntimeError() {
	r := Run(func() int {
		var m map[string]int
		m["x"] = 1
		return 0
	})

	s.True(r.IsFailure())
	f := Match(r, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.Contains(f.Message, "nil map")
}

func (s *TryTestSuite) TestMatch_ReturnsCorrectBranch() {
	ok := Run(func() string { return "fine" })
	bad := Run(func() string { panic("bad") })

	describe := func(t Try[string]) string {
		return Match(t, func(v string) string { return "ok:" + v },
			func(f Fault) string { return "fault:" + f.Message })
	}

	s.Equal("ok:fine", describe(ok))
	s.Equal("fault:bad", describe(bad))
}

func (s *TryTestSuite) TestRunE_CapturesReturnedError() {
	r := RunE(func() ([]byte, error) {
		return os.ReadFile("/definitely/not/here.trx")
	})

	s.True(r.IsFailure())
	f := Match(r, func([]byte) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.ErrorIs(f, fs.ErrNotExist)
	s.Equal("*fs.PathError", f.Type)
	s.Require().Len(f.Causes, 1)
	s.Equal("syscall.Errno", f.Causes[0].Type)
}

func (s *TryTestSuite) TestRunE_CapturesSuccessAndPanic() {
	ok := RunE(func() (int, error) { return 3, nil })
	s.True(ok.IsSuccess())

	bad := RunE(func() (int, error) { panic("inside") })
	s.True(bad.IsFailure())
}

func (s *TryTestSuite) TestCauseChain() {
	root := errors.New("root")
	wrapped := fmt.Errorf("middle: %w", root)
	joined := errors.Join(fmt.Errorf("top: %w", wrapped), errors.New("side"))

	r := Run(func() int { panic(joined) })
	f := Match(r, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })

	s.Require().Len(f.Causes, 2)
	s.Equal("side", f.Causes[1].Message)
	s.Require().Len(f.Causes[0].Causes, 1)
	s.Require().Len(f.Causes[0].Causes[0].Causes, 1)
	s.Equal("root", f.Causes[0].Causes[0].Causes[0].Message)
}

func (s *TryTestSuite) TestWithCauseDepth() {
	err := fmt.Errorf("a: %w", fmt.Errorf("b: %w", errors.New("c")))

	shallow := Run(func() int { panic(err) }, WithCauseDepth(1))
	f := Match(shallow, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.Require().Len(f.Causes, 1)
	s.Empty(f.Causes[0].Causes)

	none := Run(func() int { panic(err) }, WithCauseDepth(-3))
	f = Match(none, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.Empty(f.Causes)
}

func (s *TryTestSuite) TestWithStack() {
	r := Run(func() int { panic("trace me") }, WithStack())
	f := Match(r, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	s.Contains(f.Stack, "goroutine")
}

func TestFault_IDsAreDistinct(t *testing.T) {
	t.Parallel()

	a := Run(func() int { panic("x") })
	b := Run(func() int { panic("x") })

	fa := Match(a, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	fb := Match(b, func(int) Fault { return Fault{} }, func(f Fault) Fault { return f })
	require.NotEqual(t, uuid.Nil, fa.ID)
	assert.NotEqual(t, fa.ID, fb.ID)
}
