package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	Code int
	Body []byte
}

func MakeRequest(
	router *gin.Engine,
	method, path, authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// MakeFormRequest posts an application/x-www-form-urlencoded body, used by
// the OAuth2 password-grant token endpoint.
func MakeFormRequest(
	router *gin.Engine,
	path string,
	form url.Values,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	expectedStatus int,
) TestResponse {
	return checkStatus(t, MakeRequest(router, http.MethodGet, path, authHeader, nil), expectedStatus)
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	body any,
	expectedStatus int,
) TestResponse {
	return checkStatus(t, MakeRequest(router, http.MethodPost, path, authHeader, body), expectedStatus)
}

func MakePatchRequest(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	body any,
	expectedStatus int,
) TestResponse {
	return checkStatus(t, MakeRequest(router, http.MethodPatch, path, authHeader, body), expectedStatus)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	expectedStatus int,
) TestResponse {
	return checkStatus(t, MakeRequest(router, http.MethodDelete, path, authHeader, nil), expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	expectedStatus int,
	out any,
) {
	resp := MakeGetRequest(t, router, path, authHeader, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	body any,
	expectedStatus int,
	out any,
) {
	resp := MakePostRequest(t, router, path, authHeader, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePatchRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	path, authHeader string,
	body any,
	expectedStatus int,
	out any,
) {
	resp := MakePatchRequest(t, router, path, authHeader, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func checkStatus(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) TestResponse {
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	return TestResponse{Code: w.Code, Body: w.Body.Bytes()}
}
