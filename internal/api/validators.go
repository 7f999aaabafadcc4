package api

import (
	"context"
	"strings"

	"github.com/expomadeinworld/preference-service/internal/logging"
)

// validBrandID reports whether the brand reference collection contains the
// identifier. A lookup failure (including a store that never connected) reads
// as invalid, never as an error.
func (h *Handler) validBrandID(ctx context.Context, brandID string) bool {
	if h.store == nil {
		return false
	}
	ok, err := h.store.BrandExists(ctx, brandID)
	if err != nil {
		logging.LogKV("warn", "brand validation lookup failed", map[string]interface{}{
			"brandId": brandID, "error": err.Error(),
		})
		return false
	}
	return ok
}

// validLocale reports whether any market lists the trimmed locale among its
// supported languages. Same error coercion as validBrandID.
func (h *Handler) validLocale(ctx context.Context, locale string) bool {
	if h.store == nil {
		return false
	}
	ok, err := h.store.LocaleExists(ctx, strings.TrimSpace(locale))
	if err != nil {
		logging.LogKV("warn", "locale validation lookup failed", map[string]interface{}{
			"locale": locale, "error": err.Error(),
		})
		return false
	}
	return ok
}
