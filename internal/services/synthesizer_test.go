package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoSynthesizer struct{}

func (echoSynthesizer) Generate(_ context.Context, question string, records []Record) (*SynthesizedResponse, error) {
	resp := &SynthesizedResponse{EnoughContext: len(records) > 0}
	for _, r := range records {
		resp.ThoughtProcess = append(resp.ThoughtProcess, "read "+r.ID.String())
	}
	if resp.EnoughContext {
		resp.Answer = question + ": " + records[0].Content
	}
	return resp, nil
}

var _ Synthesizer = echoSynthesizer{}

func TestSynthesizedResponseWireNames(t *testing.T) {
	id := uuid.MustParse("6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")
	resp, err := echoSynthesizer{}.Generate(context.Background(), "q", []Record{{ID: id, Content: "a"}})
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"thought_process":["read 6f1c1d2e-3b4a-4c5d-8e9f-0a1b2c3d4e5f"],"answer":"q: a","enough_context":true}`,
		string(data))
}
