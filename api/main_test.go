package api

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/Drolfothesgnir/castparse/tmpstore"
	"github.com/Drolfothesgnir/castparse/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
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
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	Environment:    "test",
	CacheTTL:       time.Minute,
	MaxTextLength:  64,
	AllowedOrigins: []string{"http://localhost:3000"},
	CustomSuffixes: entity.DefaultSuffixes,
}

func newTestService(t *testing.T, store tmpstore.Store) *Service {
	p, err := entity.NewParser(testConfig.ParserOptions()...)
	require.NoError(t, err)

	service, err := NewService(testConfig, p, store)
	require.NoError(t, err)
	return service
}
