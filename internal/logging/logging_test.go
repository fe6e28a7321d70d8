package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		lines = append(lines, decoded)
	}
	return lines
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("nonsense").Level)
}

func TestLogData_Log(t *testing.T) {
	logger, buf := bufferedLogger()
	logData := NewLogData(logger)

	stop := logData.AddTiming("queryMs")
	stop()
	logData.AddData("ownerID", "abc")
	logData.Log().Info("done")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["loglevel"])
	assert.Equal(t, "abc", lines[0]["ownerID"])
	assert.Contains(t, lines[0], "queryMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging("info"))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestMiddleware(t *testing.T) {
	logger, buf := bufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		if logData := GetLogData(ctx); logData != nil {
			logData.AddData("seen", true)
		}
		return nil, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "boom",
		Method:      http.MethodGet,
		Path:        "/boom",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, huma.Error500InternalServerError("internal server error")
	})

	api.Get("/ping")
	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.ping.Start", lines[0]["msg"])
	assert.Equal(t, "Handler.ping.Complete", lines[1]["msg"])
	assert.Equal(t, true, lines[1]["seen"])
	assert.Contains(t, lines[1], "duration")

	buf.Reset()
	api.Get("/boom")
	lines = decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.boom.Error", lines[1]["msg"])
	assert.Equal(t, "error", lines[1]["loglevel"])
	assert.EqualValues(t, http.StatusInternalServerError, lines[1]["status"])
}
