package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedEngine struct {
	reply string
	err   error
	calls int
}

func (e *scriptedEngine) Respond(context.Context, []Message, string) (string, error) {
	e.calls++
	return e.reply, e.err
}

func TestFailoverPrefersPrimary(t *testing.T) {
	primary := &scriptedEngine{reply: "primary"}
	secondary := &scriptedEngine{reply: "secondary"}
	e := NewFailoverEngine(primary, secondary, nil)

	reply, err := e.Respond(context.Background(), nil, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "primary", reply)
	assert.Zero(t, secondary.calls)
}

func TestFailoverFallsBack(t *testing.T) {
	primary := &scriptedEngine{err: errors.New("quota exceeded")}
	secondary := &scriptedEngine{reply: "secondary"}
	e := NewFailoverEngine(primary, secondary, nil)

	reply, err := e.Respond(context.Background(), nil, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "secondary", reply)
}

func TestFailoverBothFail(t *testing.T) {
	primary := &scriptedEngine{err: errors.New("primary down")}
	secondary := &scriptedEngine{err: errors.New("secondary down")}
	e := NewFailoverEngine(primary, secondary, nil)

	_, err := e.Respond(context.Background(), nil, "prompt")
	assert.EqualError(t, err, "secondary down")
}

func TestFailoverWithoutFallback(t *testing.T) {
	primary := &scriptedEngine{err: errors.New("primary down")}
	e := NewFailoverEngine(primary, nil, nil)

	_, err := e.Respond(context.Background(), nil, "prompt")
	assert.EqualError(t, err, "primary down")
}

func TestStaticEngine(t *testing.T) {
	reply, err := Static{Reply: "fixed"}.Respond(context.Background(), nil, "anything")
	require.NoError(t, err)
	assert.Equal(t, "fixed", reply)
}
