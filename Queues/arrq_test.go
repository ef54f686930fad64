package Queues

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _R = rand.New(rand.NewSource(0))

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	for i := range 100 {
		q.Push(i)
	}
	require.Equal(t, uint(100), q.Size())
	for i := range 100 {
		if q.Peek() != i {
			t.Fatalf("peek is %d, want %d", q.Peek(), i)
		}
		v, err := q.Pop()
		require.NoError(t, err)
		if v != i {
			t.Fatalf("pop is %d, want %d", v, i)
		}
	}
	assert.True(t, q.Empty())
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	var model []int
	for range 10000 {
		if _R.Intn(3) != 0 {
			v := _R.Int()
			q.Push(v)
			model = append(model, v)
		} else if len(model) > 0 {
			v, err := q.Pop()
			require.NoError(t, err)
			if v != model[0] {
				t.Fatalf("pop is %d, want %d", v, model[0])
			}
			model = model[1:]
		}
		if _R.Intn(500) == 0 {
			q.Shrink()
		}
		if q.Size() != uint(len(model)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(model))
		}
	}
	for _, want := range model {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[string](1)
	_, err := q.Pop()
	var e *EmptyQueueError
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "", q.Peek())
	q.Push("a")
	q.Push("b")
	q.Clear()
	assert.True(t, q.Empty())
	q.Push("c")
	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}
