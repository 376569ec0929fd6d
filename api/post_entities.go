package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/castparse/content"
	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/gin-gonic/gin"
)

// parsePostBody validates the PseudoAST post body and returns it with the entities
// of every text item.
func (s *Service) parsePostBody(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	p := extractParserFromCtx(ctx)
	schema := content.NewPseudoAST(content.CurrentVersion, func(text string) ([]entity.Node, error) {
		if err := s.checkTextLength(text); err != nil {
			return nil, err
		}
		return s.extract(ctx, p, text), nil
	})

	out, err := schema.Parse(body)
	if err != nil {
		if errors.Is(err, ErrTextTooLong) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(fmt.Errorf("%w: %w", ErrInvalidBody, err)))
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", out)
}
