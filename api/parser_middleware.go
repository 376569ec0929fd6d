package api

import (
	"net/http"
	"strconv"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/gin-gonic/gin"
)

const parserKey = "request_parser"

// parserMiddleware picks the parser for the request. The query params
// "dot_in_username" and "suffix" (repeatable) override the service configuration,
// abort with 400 on error.
func (s *Service) parserMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dotRaw, hasDot := ctx.GetQuery("dot_in_username")
		suffixes, hasSuffixes := ctx.GetQueryArray("suffix")

		if !hasDot && !hasSuffixes {
			ctx.Set(parserKey, s.parser)
			ctx.Next()
			return
		}

		cfg := s.parser.Config()
		opts := []entity.Option{
			entity.WithDotInUsername(cfg.AllowDotInUsername),
			entity.WithCustomSuffixes(cfg.CustomSuffixes...),
		}

		if hasDot {
			allow, err := strconv.ParseBool(dotRaw)
			if err != nil {
				ctx.AbortWithStatusJSON(
					http.StatusBadRequest,
					NewErrorResponse(ErrInvalidParams, ErrorField{"dot_in_username", "must be a boolean"}),
				)
				return
			}
			opts = append(opts, entity.WithDotInUsername(allow))
		}

		if hasSuffixes {
			opts = append(opts, entity.WithCustomSuffixes(suffixes...))
		}

		p, err := entity.NewParser(opts...)
		if err != nil {
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidParams, ErrorField{"suffix", err.Error()}),
			)
			return
		}

		ctx.Set(parserKey, p)
		ctx.Next()
	}
}

func extractParserFromCtx(ctx *gin.Context) *entity.Parser {
	return ctx.MustGet(parserKey).(*entity.Parser)
}
