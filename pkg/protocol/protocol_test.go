package protocol_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/goscicalc/pkg/evaluator"
	"github.com/sandrolain/goscicalc/pkg/protocol"
	"github.com/sandrolain/goscicalc/pkg/types"
)

func TestHandleExpression(t *testing.T) {
	resp := protocol.Handle(context.Background(), protocol.Request{Expression: "2^3^2"})

	assert.True(t, resp.OK())
	assert.Equal(t, "512", resp.Result)
	assert.Equal(t, "2^3^2", resp.Expression)
	assert.Empty(t, resp.Code)
}

func TestHandleTokens(t *testing.T) {
	resp := protocol.Handle(context.Background(), protocol.Request{
		Expression: "ignored",
		Tokens:     []string{"5", "+/-", "×", "2"},
	})

	require.True(t, resp.OK(), resp.Error)
	assert.Equal(t, "-10", resp.Result)
	assert.Equal(t, "(-1)*(5)*2", resp.Expression)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name string
		req  protocol.Request
		code types.ErrorCode
	}{
		{"syntax", protocol.Request{Expression: "(1+"}, types.ErrExpectedToken},
		{"domain", protocol.Request{Expression: "(-1)!"}, types.ErrFactorialDomain},
		{"non-finite", protocol.Request{Tokens: []string{"1", "÷", "0"}}, types.ErrNonFinite},
		{"unknown function", protocol.Request{Expression: "foo(2)"}, types.ErrUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := protocol.Handle(context.Background(), tt.req)
			assert.False(t, resp.OK())
			assert.Empty(t, resp.Result)
			assert.Equal(t, tt.code, resp.Code)
			assert.Contains(t, resp.Error, string(tt.code))
		})
	}
}

func TestHandleBlank(t *testing.T) {
	resp := protocol.Handle(context.Background(), protocol.Request{})
	assert.True(t, resp.OK())
	assert.Equal(t, "0", resp.Result)
}

func TestHandleOptions(t *testing.T) {
	cube := func(_ context.Context, x float64) (float64, error) {
		return x * x * x, nil
	}
	resp := protocol.Handle(context.Background(),
		protocol.Request{Expression: "cube(3)"},
		evaluator.WithCustomFunction("cube", cube))

	require.True(t, resp.OK(), resp.Error)
	assert.Equal(t, "27", resp.Result)
}

func TestHandlerSharesCache(t *testing.T) {
	h := protocol.NewHandler(evaluator.WithCaching(true))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		resp := h.Handle(ctx, protocol.Request{Expression: "2*sin(30)"})
		require.True(t, resp.OK(), resp.Error)
		assert.Equal(t, "1", resp.Result)
	}
	resp := h.Handle(ctx, protocol.Request{Tokens: []string{"2", "sin", "30", ")"}})
	require.True(t, resp.OK(), resp.Error)

	stats := h.Evaluator().Cache().Stats()
	assert.Equal(t, uint64(3), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Len)
}

func TestResponseJSON(t *testing.T) {
	ok, err := json.Marshal(protocol.Response{Result: "4", Expression: "2+2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"4","expression":"2+2"}`, string(ok))

	failed, err := json.Marshal(protocol.Response{Error: "boom", Code: types.ErrNonFinite})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom","code":"D3001"}`, string(failed))

	var req protocol.Request
	require.NoError(t, json.Unmarshal([]byte(`{"tokens":["1","+","1"]}`), &req))
	assert.Equal(t, []string{"1", "+", "1"}, req.Tokens)
}
