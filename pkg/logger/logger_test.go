package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("key", "value").Msg("test message")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "test message", output["message"])
	assert.Equal(t, "value", output["key"])
	assert.Equal(t, "info", output["level"])
	assert.Contains(t, output, "time")
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"invalid", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug().Msg("debug")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info().Msg("info")
			assert.Equal(t, tt.infoSeen, buf.Len() > 0)
		})
	}
}

func TestFor_AttachesRequestMeta(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter("info", &buf)

	ctx := WithMeta(context.Background(), RequestMeta{
		RequestID:  "req-1",
		MerchantID: "m-42",
		ClientIP:   "10.0.0.1",
	})

	scoped := For(ctx, base)

	scoped.Info().Msg("scoped")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "req-1", output["request_id"])
	assert.Equal(t, "m-42", output["merchant_id"])
	assert.Equal(t, "10.0.0.1", output["client_ip"])

	// The base logger stays free of request fields.
	buf.Reset()
	base.Info().Msg("unscoped")
	output = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.NotContains(t, output, "request_id")
}

func TestFor_WithoutMeta(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter("info", &buf)

	scoped := For(context.Background(), base)

	scoped.Info().Msg("plain")
	assert.NotContains(t, buf.String(), "request_id")

	_, ok := MetaFrom(context.Background())
	assert.False(t, ok)
}

func TestNew_PrettyMode(t *testing.T) {
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
