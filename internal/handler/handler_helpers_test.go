package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/roomfinder-api/internal/models"
)

func performJSON(t *testing.T, h gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req

	h(c)
	c.Writer.WriteHeaderNow()
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// lt1Dataset holds two batches booking LT1 on Monday 09:00-10:00.
func lt1Dataset() *models.Dataset {
	lt1 := func(subject, teacher string) models.Session {
		return models.Session{Start: "09:00 AM", End: "10:00 AM", Venue: "LT1", Subject: subject, SubjectCode: subject[:2], Teacher: teacher, Type: "Lecture"}
	}
	return models.NewDataset([]models.BatchSchedule{
		{Key: "btech-1_cse", Classes: map[string][]models.Session{"Monday": {lt1("Maths", "Dr. Rao")}}},
		{Key: "btech-1_ece", Classes: map[string][]models.Session{"Monday": {lt1("Physics", "Dr. Sen")}}},
	})
}
