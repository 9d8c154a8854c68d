package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	listerrors "github.com/wehubfusion/listops/pkg/errors"
)

func TestChain_Success(t *testing.T) {
	s := NewSlice(10, 20, 30, 40)
	var seen []int
	record := func(v int) { seen = append(seen, v) }

	out, err := NewChain[int](s, Config{}).
		Process(1, record).
		Process(0, record).
		Result()

	require.NoError(t, err)
	assert.Same(t, s, out)
	assert.Equal(t, []int{20, 10}, seen)
	assert.Equal(t, Slice[int]{30, 40}, *s)
}

func TestChain_StopsAfterFirstError(t *testing.T) {
	l := NewLinkedList("a", "b")
	var seen []string
	record := func(v string) { seen = append(seen, v) }

	chain := NewChain[string](l, Config{}).
		Process(0, record).
		Process(5, record).
		Process(0, record)

	require.Error(t, chain.Err())
	assert.True(t, listerrors.IsIndexOutOfRange(chain.Err()))
	assert.Equal(t, []string{"a"}, seen)
	assert.Equal(t, []string{"b"}, chain.List().Values())
}

func TestChain_NilCallback(t *testing.T) {
	s := NewSlice(1)

	err := NewChain[int](s, Config{}).Process(0, nil).Err()

	assert.True(t, listerrors.IsInvalidArgument(err))
	assert.Equal(t, 1, s.Len())
}

func TestChain_WithDiscard(t *testing.T) {
	s := NewSlice("a", "bb")

	err := NewChain[string](s, Config{}).
		Process(1, Discard(func(v string) int { return len(v) })).
		Err()

	require.NoError(t, err)
	assert.Equal(t, Slice[string]{"a"}, *s)
}

func TestChain_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSlice(1, 2)

	NewChain[int](s, Config{Logger: zap.New(core)}).
		Process(0, func(int) {}).
		Process(9, func(int) {}).
		Process(0, func(int) {})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "Removed element", entries[0].Message)
	assert.Equal(t, int64(1), entries[0].ContextMap()["remaining"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Removal failed", entries[1].Message)
	assert.Equal(t, int64(9), entries[1].ContextMap()["index"])

	assert.Equal(t, "Skipping removal after earlier failure", entries[2].Message)
	assert.Equal(t, int64(3), entries[2].ContextMap()["step"])
}

func TestChain_NilList(t *testing.T) {
	called := false

	chain := NewChain[int]((*Slice[int])(nil), Config{}).
		Process(0, func(int) { called = true })

	assert.True(t, listerrors.IsInvalidArgument(chain.Err()))
	assert.Nil(t, chain.List())
	assert.False(t, called)
}
