package cmd

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ganten7/ivory/config"
	"github.com/ganten7/ivory/model"
)

func newTestServer() *detectServer {
	return &detectServer{settings: config.Default(), log: zap.NewNop()}
}

func TestHandleDetect(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("POST", "/detect", strings.NewReader(`{"notes":[60,64,67]}`))
	rec := httptest.NewRecorder()
	server.handleDetect(rec, req)

	assert := assert.New(t)
	assert.Equal(200, rec.Code)

	var res model.DetectResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal("C", res.Label)
	assert.NotEmpty(res.RequestId)
}

func TestHandleDetectPreferSharps(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("POST", "/detect",
		strings.NewReader(`{"notes":[61,65,68],"prefer_flats":false}`))
	rec := httptest.NewRecorder()
	server.handleDetect(rec, req)

	assert := assert.New(t)
	assert.Equal(200, rec.Code)

	var res model.DetectResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal("C#", res.Label)
}

func TestHandleDetectNoMatch(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("POST", "/detect", strings.NewReader(`{"notes":[60]}`))
	rec := httptest.NewRecorder()
	server.handleDetect(rec, req)

	assert := assert.New(t)
	assert.Equal(422, rec.Code)

	var res model.ErrorResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal("no match", res.Error)
}

func TestHandleDetectBadBody(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("POST", "/detect", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	server.handleDetect(rec, req)

	assert := assert.New(t)
	assert.Equal(400, rec.Code)
}
