package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Codycody31/changerawr-sub002/markdown"
	mockcache "github.com/Codycody31/changerawr-sub002/rendercache/mock"
)

func TestRequestIDMiddleware_GeneratesIDWhenMissing(t *testing.T) {
	cacheCtrl := gomock.NewController(t)
	defer cacheCtrl.Finish()
	cache := mockcache.NewMockStore(cacheCtrl)

	service := newTestService(t, markdown.New(), cache)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, PingURL, nil)
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)

	id := recorder.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}

func TestRequestIDMiddleware_ReusesClientProvidedID(t *testing.T) {
	cacheCtrl := gomock.NewController(t)
	defer cacheCtrl.Finish()
	cache := mockcache.NewMockStore(cacheCtrl)

	service := newTestService(t, markdown.New(), cache)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, PingURL, nil)
	require.NoError(t, err)
	request.Header.Set(RequestIDHeader, "editor-42")

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, "editor-42", recorder.Header().Get(RequestIDHeader))
}
