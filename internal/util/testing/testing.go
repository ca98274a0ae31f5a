package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Token          string
	Body           any
	ExpectedStatus int
}

type TestResponse struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *TestResponse {
	t.Helper()

	var bodyReader *bytes.Reader
	switch body := options.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		data, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(options.Method, options.URL, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if options.Token != "" {
		req.Header.Set("Authorization", "Bearer "+options.Token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if options.ExpectedStatus != 0 {
		assert.Equal(t, options.ExpectedStatus, recorder.Code,
			"unexpected status for %s %s: %s", options.Method, options.URL, recorder.Body.String())
	}

	return &TestResponse{
		Code: recorder.Code,
		Body: recorder.Body.Bytes(),
	}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodGet,
		URL:            url,
		Token:          token,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(t *testing.T, router *gin.Engine, url, token string, body any, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPost,
		URL:            url,
		Token:          token,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequest(t *testing.T, router *gin.Engine, url, token string, body any, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPut,
		URL:            url,
		Token:          token,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, token string, expectedStatus int) *TestResponse {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodDelete,
		URL:            url,
		Token:          token,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeGetRequest(t, router, url, token, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, token string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakePostRequest(t, router, url, token, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}
