// internal/handler/decode_handler.go
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"escpos-service/internal/utils"
	"escpos-service/pkg/escpos"
)

// DecodeHandler decodes streams without storing or forwarding them
type DecodeHandler struct {
	decoder      *escpos.Decoder
	maxBodyBytes int64
	logger       *utils.ServiceLogger
}

// NewDecodeHandler creates a new decode handler
func NewDecodeHandler(decoder *escpos.Decoder, maxBodyBytes int64, logger *zap.Logger) *DecodeHandler {
	return &DecodeHandler{
		decoder:      decoder,
		maxBodyBytes: maxBodyBytes,
		logger:       utils.NewServiceLogger(logger, "decode-handler"),
	}
}

// RecordView is one command of a decoded stream
type RecordView struct {
	Index       int    `json:"index"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Length      int    `json:"length"`
	Hex         string `json:"hex"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text,omitempty"`
}

// BitmapView describes one extracted image
type BitmapView struct {
	Record int    `json:"record"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Layout string `json:"layout"`
}

// DecodeResponse is the full decode of one stream
type DecodeResponse struct {
	Text    string       `json:"text"`
	Records []RecordView `json:"records,omitempty"`
	Bitmaps []BitmapView `json:"bitmaps"`
	Errors  []string     `json:"errors,omitempty"`
}

// Decode decodes an uploaded stream
// @Summary Decode a stream
// @Description Decode raw ESC/POS bytes into text, a command listing and bitmap sizes
// @Tags Decode
// @Accept octet-stream
// @Produce json
// @Param device query string false "printer or linedisplay"
// @Param code_page query int false "Initial code page"
// @Param ics query int false "Initial international character set"
// @Param kanji query bool false "Start in Kanji mode"
// @Param records query bool false "Include the command listing" default(true)
// @Param format query string false "json or text" Enums(json, text)
// @Param stream body []byte true "Raw ESC/POS bytes"
// @Success 200 {object} utils.APIResponse{data=DecodeResponse} "Stream decoded"
// @Failure 400 {object} utils.APIResponse "Invalid parameters or empty body"
// @Router /api/v1/decode [post]
func (h *DecodeHandler) Decode(c *gin.Context) {
	decoder, err := h.decoderFor(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid decoder parameters", err)
		return
	}

	raw, ok := readBody(c, h.maxBodyBytes)
	if !ok {
		return
	}

	result, err := decoder.Decode(raw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to decode stream", err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, result.Text)
		return
	}

	withRecords := true
	if v := c.Query("records"); v != "" {
		withRecords, _ = strconv.ParseBool(v)
	}

	utils.SuccessResponse(c, http.StatusOK, "Stream decoded successfully", buildDecodeResponse(result, withRecords))
}

// decoderFor applies query overrides on top of the configured decoder
func (h *DecodeHandler) decoderFor(c *gin.Context) (*escpos.Decoder, error) {
	cfg := h.decoder.Config()
	overridden := false

	if v := c.Query("device"); v != "" {
		device, err := escpos.ParseDeviceType(v)
		if err != nil {
			return nil, err
		}
		cfg.Device = device
		overridden = true
	}
	if v := c.Query("code_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("code_page: %w", err)
		}
		cfg.CodePage = n
		overridden = true
	}
	if v := c.Query("ics"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("ics: %w", err)
		}
		cfg.ICS = byte(n)
		overridden = true
	}
	if v := c.Query("kanji"); v != "" {
		kanji, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("kanji: %w", err)
		}
		cfg.Kanji = kanji
		overridden = true
	}

	if !overridden {
		return h.decoder, nil
	}
	return escpos.New(cfg, escpos.WithLogger(h.logger.Logger))
}

func buildDecodeResponse(result *escpos.Result, withRecords bool) *DecodeResponse {
	resp := &DecodeResponse{Text: result.Text, Bitmaps: []BitmapView{}}

	for i, r := range result.Records {
		if withRecords {
			resp.Records = append(resp.Records, RecordView{
				Index:       i,
				Type:        string(r.Type),
				Category:    string(r.Category),
				Length:      r.Len(),
				Hex:         r.Hex(),
				Description: r.Description,
				Text:        r.Text,
			})
		}
		for _, b := range r.Bitmaps {
			resp.Bitmaps = append(resp.Bitmaps, BitmapView{
				Record: i,
				Width:  b.Width(),
				Height: b.Height(),
				Layout: string(b.Layout),
			})
		}
	}
	for _, derr := range result.Errors {
		resp.Errors = append(resp.Errors, derr.Error())
	}
	return resp
}
