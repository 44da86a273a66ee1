package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Codycody31/changerawr-sub002/markdown"
	mockcache "github.com/Codycody31/changerawr-sub002/rendercache/mock"
)

func TestParseMarkdown(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"markdown": "# Release v2\n\nfixed things"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp parseResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

				require.NotEmpty(t, resp.Tokens)
				require.Equal(t, markdown.TypeHeading, resp.Tokens[0].Type)
				require.Equal(t, "Release v2", resp.Tokens[0].Content)
				require.Empty(t, resp.Warnings)
				require.Equal(t, 4, resp.WordCount)
				require.Equal(t, 1, resp.ReadingTime)
			},
		},
		{
			name: "WarningsAreAdvisory",
			body: gin.H{"markdown": "unbalanced **bold here"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp parseResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.Tokens)
				require.NotEmpty(t, resp.Warnings)
			},
		},
		{
			name: "EmptyWarningsSerializeAsArray",
			body: gin.H{"markdown": "plain"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Contains(t, recorder.Body.String(), `"warnings":[]`)
			},
		},
		{
			name: "MissingMarkdownField",
			body: gin.H{"other": "field"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cacheCtrl := gomock.NewController(t)
			defer cacheCtrl.Finish()
			cache := mockcache.NewMockStore(cacheCtrl)

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			service := newTestService(t, markdown.New(), cache)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, ParseURL, bytes.NewReader(data))
			require.NoError(t, err)
			request.Header.Set("Content-Type", "application/json")

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
