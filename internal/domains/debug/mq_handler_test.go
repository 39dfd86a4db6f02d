package debug_test

import (
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmlpg/pvfll-portal/internal/domains/debug"
)

func TestMQHandler_DumpHeap(t *testing.T) {
	resp := debug.NewMQHandler().DumpHeap(&nats.Msg{Subject: "portal.debug.dump_heap"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Status string `json:"status"`
		Data   []byte `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ok", decoded.Status)
	assert.NotEmpty(t, decoded.Data)
}

func TestMQHandler_Stats(t *testing.T) {
	resp := debug.NewMQHandler().Stats(&nats.Msg{Subject: "portal.debug.stats"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Status string `json:"status"`
		Data   struct {
			Uptime     string `json:"uptime"`
			Goroutines int    `json:"goroutines"`
			HeapAlloc  uint64 `json:"heap_alloc"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ok", decoded.Status)
	assert.Positive(t, decoded.Data.Goroutines)
	assert.Positive(t, decoded.Data.HeapAlloc)
	assert.NotEmpty(t, decoded.Data.Uptime)
}
