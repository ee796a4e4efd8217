package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqualIgnoresKeysAndNumberForms(t *testing.T) {
	a := []byte(`{"status":"success","count":1,"teacher_classes":[{"room":"LT1","is_current":true}]}`)
	b := []byte(`{"count":1.0,"status":"success","teacher_classes":[{"room":"LT1","is_current":false}]}`)

	assert.False(t, bodiesEqual(a, b, nil))
	assert.True(t, bodiesEqual(a, b, []string{"is_current"}))
	assert.False(t, bodiesEqual([]byte("not json"), b, nil))
}

func TestCompareTargetSendsBody(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer echo.Close()

	tgt := target{Method: "post", Path: "api/tabledata", Body: json.RawMessage(`{"day":"Monday"}`), Critical: true}
	comp := compareTarget(echo.Client(), echo.URL, echo.URL, tgt)
	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)

	var out bytes.Buffer
	printReport(&out, []comparison{comp})
	assert.Contains(t, out.String(), "[OK] post api/tabledata")
}
