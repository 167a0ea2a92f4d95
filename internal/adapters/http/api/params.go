package api

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
)

// Query parameter names.
const (
	paramTitle   = "title"
	paramRank    = "rank"
	paramTheme   = "theme"
	paramColumn  = "column"
	paramRow     = "row"
	paramMarginW = "margin-w"
	paramMarginH = "margin-h"
	paramNoBg    = "no-bg"
	paramNoFrame = "no-frame"
)

var (
	errNotPositive = errors.New("must be positive")
	errNegative    = errors.New("must not be negative")
)

// parseQuery reads title and rank selections. Both accept comma lists and
// repeated parameters.
func parseQuery(values url.Values) trophy.Query {
	return trophy.Query{
		Titles: trophy.SplitList(values[paramTitle]...),
		Ranks:  trophy.SplitList(values[paramRank]...),
	}
}

// parseCardOptions overlays request parameters on defaults. Unknown theme
// names fall back to the default theme.
func parseCardOptions(values url.Values, defaults render.CardOptions) (render.CardOptions, error) {
	opts := defaults

	if name := values.Get(paramTheme); name != "" {
		opts.Theme, _ = render.LookupTheme(name)
	}

	var err error
	if opts.MaxColumn, err = intParam(values, paramColumn, opts.MaxColumn, func(n int) error {
		if n == -1 || n > 0 {
			return nil
		}
		return errNotPositive
	}); err != nil {
		return opts, err
	}
	if opts.MaxRow, err = intParam(values, paramRow, opts.MaxRow, positive); err != nil {
		return opts, err
	}
	if opts.MarginWidth, err = intParam(values, paramMarginW, opts.MarginWidth, nonNegative); err != nil {
		return opts, err
	}
	if opts.MarginHeight, err = intParam(values, paramMarginH, opts.MarginHeight, nonNegative); err != nil {
		return opts, err
	}
	if opts.NoBackground, err = boolParam(values, paramNoBg, opts.NoBackground); err != nil {
		return opts, err
	}
	if opts.NoFrame, err = boolParam(values, paramNoFrame, opts.NoFrame); err != nil {
		return opts, err
	}
	return opts, nil
}

func positive(n int) error {
	if n <= 0 {
		return errNotPositive
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return errNegative
	}
	return nil
}

func intParam(values url.Values, name string, def int, check func(int) error) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, invalidParam(name, raw, err)
	}
	if err := check(n); err != nil {
		return def, invalidParam(name, raw, err)
	}
	return n, nil
}

func boolParam(values url.Values, name string, def bool) (bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def, invalidParam(name, raw, err)
	}
	return b, nil
}
