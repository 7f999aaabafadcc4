package api

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/expomadeinworld/preference-service/internal/models"
	"github.com/gin-gonic/gin"
)

const storeTimeout = 10 * time.Second

// requiredFieldsMessage enumerates missing field display names, e.g.
// "Brand ID is required" or "Brand ID, Locale are required".
func requiredFieldsMessage(missing []string) string {
	suffix := " is required"
	if len(missing) > 1 {
		suffix = " are required"
	}
	return strings.Join(missing, ", ") + suffix
}

// checkPreferenceParams runs the shared missing/invalid checks for the
// parameter-driven preference operations. It writes the response and returns
// false when the request must not proceed.
func (h *Handler) checkPreferenceParams(c *gin.Context, ctx context.Context, brandID, locale string) bool {
	if brandID == "" {
		respondError(c, http.StatusBadRequest, "Brand ID is required")
		return false
	}
	if locale == "" {
		respondError(c, http.StatusBadRequest, "Locale is required")
		return false
	}
	if !h.validBrandID(ctx, brandID) {
		respondError(c, http.StatusBadRequest, "Invalid brandId")
		return false
	}
	if !h.validLocale(ctx, locale) {
		respondError(c, http.StatusBadRequest, "Invalid locale")
		return false
	}
	return true
}

// GetPreferences handles GET /preferences/:brandId/:locale
func (h *Handler) GetPreferences(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	brandID := c.Param("brandId")
	locale := c.Param("locale")
	if !h.checkPreferenceParams(c, ctx, brandID, locale) {
		return
	}

	// The existence probe and the fetch are deliberately separate store
	// calls; a disagreement between them surfaces as 400 below.
	exists, err := h.store.PreferenceExists(ctx, brandID, locale)
	if err != nil {
		log.Printf("Preference existence probe failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if !exists {
		respondError(c, http.StatusNotFound, "No preferences found for the given brandId and locale")
		return
	}

	records, err := h.store.FindPreferences(ctx, brandID, locale)
	if err != nil {
		log.Printf("Failed to fetch preferences: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if len(records) == 0 {
		respondError(c, http.StatusBadRequest, "No preferences found")
		return
	}

	h.logEvent("getPreferences", brandID, locale, http.StatusOK, "preferences fetched")
	respondSuccess(c, http.StatusOK, "Preferences fetched successfully", records)
}

// CreatePreference handles POST /preferences. Creation is an upsert keyed by
// (brandId, questionId, locale): a repeat create overwrites and still answers
// 201.
func (h *Handler) CreatePreference(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	var body models.Question
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := body.MissingIdentityFields(); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, requiredFieldsMessage(missing))
		return
	}
	if !h.validBrandID(ctx, body.BrandID) {
		respondError(c, http.StatusBadRequest, "Invalid brandId")
		return
	}
	if !h.validLocale(ctx, body.Locale) {
		respondError(c, http.StatusBadRequest, "Invalid locale")
		return
	}

	saved, err := h.store.UpsertQuestion(ctx, body)
	if err != nil {
		log.Printf("Failed to create preference: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error creating preference", err)
		return
	}

	h.logEvent("createPreference", body.BrandID, body.Locale, http.StatusCreated, "preference created")
	respondSuccess(c, http.StatusCreated, "Preference created successfully", saved)
}

// UpdatePreference handles PUT /preferences. Unlike create this requires an
// existing match; there is no upsert.
func (h *Handler) UpdatePreference(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	var body models.Question
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := body.MissingIdentityFields(); len(missing) > 0 {
		respondError(c, http.StatusBadRequest, requiredFieldsMessage(missing))
		return
	}
	if !h.validBrandID(ctx, body.BrandID) {
		respondError(c, http.StatusBadRequest, "Invalid brandId")
		return
	}
	if !h.validLocale(ctx, body.Locale) {
		respondError(c, http.StatusBadRequest, "Invalid locale")
		return
	}

	saved, err := h.store.UpdateQuestion(ctx, body)
	if err != nil {
		log.Printf("Failed to update preference: %v", err)
		respondErrorDetail(c, http.StatusInternalServerError, "Error updating preference", err)
		return
	}
	if saved == nil {
		respondError(c, http.StatusNotFound, "Preference not found")
		return
	}

	h.logEvent("updatePreference", body.BrandID, body.Locale, http.StatusOK, "preference updated")
	respondSuccess(c, http.StatusOK, "Preference updated successfully", saved)
}

// DeletePreference handles DELETE /preferences/:brandId/:locale. A miss
// answers 400 here, not 404; delete-question answers 404 for the analogous
// case and the asymmetry is part of the contract.
func (h *Handler) DeletePreference(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	brandID := c.Param("brandId")
	locale := c.Param("locale")
	if !h.checkPreferenceParams(c, ctx, brandID, locale) {
		return
	}

	deleted, err := h.store.DeletePreference(ctx, brandID, locale)
	if err != nil {
		log.Printf("Failed to delete preference: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	if deleted == nil {
		respondError(c, http.StatusBadRequest, "No preference found for the given brandId and locale")
		return
	}

	h.logEvent("deletePreference", brandID, locale, http.StatusOK, "preference deleted")
	respondSuccess(c, http.StatusOK, "Preference deleted successfully", deleted)
}
