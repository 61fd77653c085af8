package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooseUnmarshalJSON(t *testing.T) {
	tests := map[string]Loose{
		`{"duration":30}`:     "30",
		`{"duration":"45"}`:   "45",
		`{"duration":null}`:   "",
		`{"duration":12.5}`:   "12.5",
		`{"duration":"ten"}`:  "ten",
		`{"description":"a"}`: "",
	}

	for body, want := range tests {
		var req AddExerciseRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.Equal(t, want, req.Duration, body)
	}
}

func TestLogEncodesEmptyArray(t *testing.T) {
	out, err := json.Marshal(Log{ID: "u1", Username: "alice", Log: []LogEntry{}})
	require.NoError(t, err)
	require.JSONEq(t, `{"_id":"u1","username":"alice","count":0,"log":[]}`, string(out))
}
