// Package prompts loads and serves the persona system prompts, the shared
// quality-evaluation instruction block, and the per-persona fallback texts.
//
// The catalog keeps an immutable snapshot behind an atomic pointer: readers
// always observe either the fully-old or fully-new table, and Refresh swaps
// the whole snapshot under a single write barrier. No lock is taken on reads.
package prompts

import (
	"encoding/json"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// personaEntry is the per-persona section of the catalog document.
type personaEntry struct {
	SystemPrompt string `json:"system_prompt"`
}

// qualityEntry is the shared quality-evaluation section.
type qualityEntry struct {
	EvaluationPrompt string `json:"evaluation_prompt"`
}

// promptSet is one immutable snapshot of the catalog document.
type promptSet struct {
	Personas  map[string]personaEntry `json:"personas"`
	Quality   qualityEntry            `json:"quality"`
	Fallbacks map[string]string       `json:"fallbacks"`
}

// emptySet returns a structurally valid set with no entries, used when the
// backing document is missing or corrupt so lookups degrade to empty strings
// instead of failing.
func emptySet() *promptSet {
	return &promptSet{
		Personas:  map[string]personaEntry{},
		Fallbacks: map[string]string{},
	}
}

// Catalog serves prompt lookups from the current snapshot. Lookups never
// fail; a missing entry yields an empty string, which callers treat as "use
// the default persona".
type Catalog struct {
	path string
	set  atomic.Pointer[promptSet]
}

// New constructs a Catalog backed by the JSON document at path and performs
// the initial load. A load failure is logged and replaced by an empty set;
// startup never fails on a bad prompts file.
func New(path string) *Catalog {
	c := &Catalog{path: path}
	if err := c.Refresh(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("prompt catalog load failed, serving empty set")
	}
	return c
}

// Refresh reloads the document and atomically replaces the snapshot. On
// failure the snapshot is replaced with an empty-but-valid set and the error
// is returned so an administrative caller can report the outcome. Idempotent
// and safe to call concurrently with reads.
func (c *Catalog) Refresh() error {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		c.set.Store(emptySet())
		return err
	}

	next := emptySet()
	if err := json.Unmarshal(raw, next); err != nil {
		c.set.Store(emptySet())
		return err
	}
	if next.Personas == nil {
		next.Personas = map[string]personaEntry{}
	}
	if next.Fallbacks == nil {
		next.Fallbacks = map[string]string{}
	}

	c.set.Store(next)
	log.Info().Str("path", c.path).Int("personas", len(next.Personas)).Msg("prompt catalog loaded")
	return nil
}

// PersonaPrompt returns the system prompt for persona, or "" when unknown or
// unloaded.
func (c *Catalog) PersonaPrompt(persona domain.Persona) string {
	return c.set.Load().Personas[string(persona)].SystemPrompt
}

// QualityPrompt returns the shared instruction block that asks the model to
// self-report a quality tag.
func (c *Catalog) QualityPrompt() string {
	return c.set.Load().Quality.EvaluationPrompt
}

// FallbackResponse returns the canned guidance text used when generation
// fails for persona, or "" when absent.
func (c *Catalog) FallbackResponse(persona domain.Persona) string {
	return c.set.Load().Fallbacks[string(persona)]
}
