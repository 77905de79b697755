package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/nameforge/pkg/logger"
	"github.com/dmitrymomot/nameforge/pkg/namegen"
	"github.com/dmitrymomot/nameforge/pkg/theme"
	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

type generateResponse struct {
	Theme string           `json:"theme"`
	Count int              `json:"count"`
	Names []namegen.Result `json:"names"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "malformed form body")
		return
	}

	opts := optionsFromForm(r)
	count := parseCount(r)

	gen, err := s.generator(opts.Theme)
	if err != nil {
		if errors.Is(err, theme.ErrInvalidThemeName) {
			respondError(w, http.StatusBadRequest, "invalid theme name")
			return
		}
		// Engine failures ride the envelope, not the status line; only an
		// unreadable body earns a 400.
		s.log.ErrorContext(r.Context(), "theme load failed",
			logger.Error(err), logger.Theme(opts.Theme))
		respondError(w, http.StatusOK, "theme unavailable")
		return
	}

	results, err := gen.GenerateN(count, opts)
	if err != nil {
		s.log.ErrorContext(r.Context(), "generation failed",
			logger.Error(err), logger.Theme(opts.Theme), logger.Count(count))
		if len(results) == 0 {
			respondError(w, http.StatusOK, "name generation failed")
			return
		}
		// Partial batch: the names that made it still go out.
	}

	respondJSON(w, http.StatusOK, generateResponse{
		Theme: opts.Theme,
		Count: len(results),
		Names: results,
	})
}

type axisRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type presetView struct {
	ID                 string               `json:"id"`
	Theme              string               `json:"theme"`
	Target             map[string]axisRange `json:"target,omitempty"`
	BlockCounts        []int                `json:"block_counts"`
	VowelFirst         *float64             `json:"vowel_first,omitempty"`
	FeatureChance      float64              `json:"feature_chance"`
	MaxFeatures        int                  `json:"max_features"`
	AllowApostrophes   bool                 `json:"allow_apostrophes"`
	AllowHyphens       bool                 `json:"allow_hyphens"`
	AllowSpaces        bool                 `json:"allow_spaces"`
	ModificationChance float64              `json:"modification_chance"`
	MaxModifications   int                  `json:"max_modifications"`
	AllowDiacritics    bool                 `json:"allow_diacritics"`
	AllowLigatures     bool                 `json:"allow_ligatures"`
}

func newPresetView(id string, opts *namegen.Options) presetView {
	view := presetView{
		ID:                 id,
		Theme:              opts.Theme,
		BlockCounts:        opts.BlockCounts,
		VowelFirst:         opts.VowelFirst,
		FeatureChance:      opts.FeatureChance,
		MaxFeatures:        opts.MaxFeatures,
		AllowApostrophes:   opts.AllowApostrophes,
		AllowHyphens:       opts.AllowHyphens,
		AllowSpaces:        opts.AllowSpaces,
		ModificationChance: opts.ModificationChance,
		MaxModifications:   opts.MaxModifications,
		AllowDiacritics:    opts.AllowDiacritics,
		AllowLigatures:     opts.AllowLigatures,
	}
	for _, ax := range vibe.Axes() {
		if r, ok := opts.Target.Range(ax); ok {
			if view.Target == nil {
				view.Target = make(map[string]axisRange)
			}
			view.Target[ax.String()] = axisRange{Min: r.Min, Max: r.Max}
		}
	}
	return view
}

func (s *Server) handlePresetList(w http.ResponseWriter, r *http.Request) {
	ids := namegen.PresetIDs()
	views := make([]presetView, 0, len(ids))
	for _, id := range ids {
		opts, _ := namegen.Preset(id)
		views = append(views, newPresetView(id, opts))
	}
	respondJSON(w, http.StatusOK, map[string]any{"presets": views})
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts, ok := namegen.Preset(id)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown preset")
		return
	}
	respondJSON(w, http.StatusOK, newPresetView(id, opts))
}
