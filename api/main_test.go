package api

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/Codycody31/changerawr-sub002/markdown"
	"github.com/Codycody31/changerawr-sub002/rendercache"
	"github.com/Codycody31/changerawr-sub002/util"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	Environment:       "test",
	HTTPServerAddress: "0.0.0.0:8080",
	AllowedOrigins:    []string{"*"},
	RenderCacheTTL:    time.Minute,
	MaxEntryBytes:     1 << 20,
}

func newTestService(
	t *testing.T,
	engine *markdown.Engine,
	cache rendercache.Store,
) *Service {

	service, err := NewService(testConfig, engine, cache)
	require.NoError(t, err)
	return service
}
