package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/stagehand/internal/artifacts"
	"github.com/alexisbeaulieu97/stagehand/internal/config"
	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

const baselineThemeParam = "baselineTheme"

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// renderJSON decodes a JSON configuration body and returns both artifacts.
func (s *Server) renderJSON(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.fail(c, stagehanderrors.NewParseError("request body", 0, err))
		return
	}

	cfg, err := config.Decode("request body", config.FormatJSON, body)
	if err != nil {
		s.fail(c, err)
		return
	}

	baseline, err := baselineTheme(c, cfg)
	if err != nil {
		s.fail(c, err)
		return
	}

	out, err := artifacts.Render(cfg, baseline)
	if err != nil {
		s.fail(c, err)
		return
	}

	for _, kind := range artifacts.Kinds() {
		s.metrics.RendersTotal.WithLabelValues(string(kind)).Inc()
	}
	c.JSON(http.StatusOK, out)
}

// renderText renders a single artifact from query parameters.
func (s *Server) renderText(c *gin.Context) {
	kind, err := artifacts.ParseKind(c.Param("kind"))
	if err != nil {
		s.fail(c, err)
		return
	}

	cfg, err := configFromQuery(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	baseline, err := baselineTheme(c, cfg)
	if err != nil {
		s.fail(c, err)
		return
	}

	text, err := artifacts.RenderKind(cfg, baseline, kind)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.metrics.RendersTotal.WithLabelValues(string(kind)).Inc()
	c.String(http.StatusOK, text)
}

// configFromQuery overlays query parameters on the baseline. An absent
// primaryColor follows the selected theme.
func configFromQuery(c *gin.Context) (options.Config, error) {
	cfg := defaults.Baseline()

	if v, ok := c.GetQuery("theme"); ok {
		theme, err := options.ParseTheme(v)
		if err != nil {
			return options.Config{}, err
		}
		cfg.Theme = theme
	}
	cfg.PrimaryColor = defaults.PrimaryColorFor(cfg.Theme)

	if v, ok := c.GetQuery("backdrop"); ok {
		backdrop, err := options.ParseBackdrop(v)
		if err != nil {
			return options.Config{}, err
		}
		cfg.Backdrop = backdrop
	}
	if v, ok := c.GetQuery("gradient"); ok {
		gradient, err := options.ParseGradient(v)
		if err != nil {
			return options.Config{}, err
		}
		cfg.Gradient = gradient
	}
	if v, ok := c.GetQuery("allowClickOutside"); ok {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return options.Config{}, stagehanderrors.NewValidationError("allowClickOutside", "must be true or false", err)
		}
		cfg.AllowClickOutside = allow
	}
	if v, ok := c.GetQuery("primaryColor"); ok {
		cfg.PrimaryColor = v
	}
	if v, ok := c.GetQuery("radius"); ok {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return options.Config{}, stagehanderrors.NewValidationError("radius", "must be a number", err)
		}
		cfg.Radius = radius
	}

	return cfg, nil
}

// baselineTheme picks the theme whose defaults the projection is measured
// against. It falls back to the configured theme.
func baselineTheme(c *gin.Context, cfg options.Config) (options.Theme, error) {
	v, ok := c.GetQuery(baselineThemeParam)
	if !ok || v == "" {
		return cfg.Theme, nil
	}
	return options.ParseTheme(v)
}

func (s *Server) fail(c *gin.Context, err error) {
	resp := errorResponse{Error: err.Error()}
	reason := "internal"
	status := http.StatusBadRequest

	var (
		unrecognized *stagehanderrors.UnrecognizedOptionError
		invalidColor *stagehanderrors.InvalidColorFormatError
		validation   *stagehanderrors.ValidationError
		parse        *stagehanderrors.ParseError
	)
	switch {
	case errors.As(err, &unrecognized):
		resp.Field = unrecognized.Option
		reason = "unrecognized_option"
	case errors.As(err, &invalidColor):
		resp.Field = defaults.FieldPrimaryColor.String()
		reason = "invalid_color"
	case errors.As(err, &validation):
		resp.Field = validation.Field
		reason = "validation"
	case errors.As(err, &parse):
		resp.Field = "body"
		reason = "parse"
	default:
		status = http.StatusInternalServerError
	}

	s.metrics.RenderErrors.WithLabelValues(reason).Inc()
	s.log.WithFields(map[string]any{
		"reason": reason,
		"field":  resp.Field,
	}).Debug(err.Error())

	c.JSON(status, resp)
}
