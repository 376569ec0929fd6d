package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/Drolfothesgnir/castparse/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ParseTextRequest struct {
	Text         string `json:"text" binding:"required"`
	OnlyEntities bool   `json:"only_entities"`
}

type ParseTextResponse struct {
	Nodes []entity.Node `json:"nodes"`
}

func (s *Service) parseText(ctx *gin.Context) {
	var req ParseTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if err := s.checkTextLength(req.Text); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(err, ErrorField{"text", "value is too long"}),
		)
		return
	}

	nodes := s.extract(ctx, extractParserFromCtx(ctx), req.Text)

	if req.OnlyEntities {
		nodes = entity.Entities(nodes)
		if nodes == nil {
			nodes = []entity.Node{}
		}
	}

	ctx.JSON(http.StatusOK, ParseTextResponse{nodes})
}

func (s *Service) checkTextLength(text string) error {
	if n := utf8.RuneCountInString(text); n > s.config.MaxTextLength {
		return fmt.Errorf("%w: %d chars, max %d", ErrTextTooLong, n, s.config.MaxTextLength)
	}
	return nil
}

// extract parses the text, consulting the cache first. The cache is best-effort:
// its failures are logged and the text is parsed anyway.
func (s *Service) extract(ctx context.Context, p *entity.Parser, text string) []entity.Node {
	if s.store == nil {
		return p.Parse(text)
	}

	key := tmpstore.Key(p.Fingerprint(), text)

	nodes, err := s.store.GetNodes(ctx, key)
	if err == nil {
		return nodes
	}

	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cannot read cached nodes")
	}

	nodes = p.Parse(text)

	if err := s.store.SaveNodes(ctx, key, nodes, s.config.CacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cannot cache nodes")
	}

	return nodes
}
