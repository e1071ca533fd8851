// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type (
	// Promotions maps "<channel>" and "<baseVersion>-<channel>" keys to the
	// forge build promoted on that channel.
	Promotions struct {
		Promos map[string]Promotion `json:"promos"`
	}

	// Promotion is a promoted forge build and the base game version it targets.
	Promotion struct {
		Version     string
		BaseVersion string
	}

	wirePromotion struct {
		Version   string `json:"version"`
		MCVersion string `json:"mcversion"`
	}
)

// ParsePromotions decodes both the legacy promotions document, whose values
// are objects with version and mcversion, and the slim form whose values are
// bare version strings. For the slim form the base version is taken from
// the "<baseVersion>-<channel>" key.
func ParsePromotions(data []byte) (*Promotions, error) {
	var raw struct {
		Promos map[string]json.RawMessage `json:"promos"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding promotions: %w", err)
	}

	p := &Promotions{Promos: make(map[string]Promotion, len(raw.Promos))}
	for key, val := range raw.Promos {
		val = bytes.TrimSpace(val)
		if len(val) > 0 && val[0] == '"' {
			var version string
			if err := json.Unmarshal(val, &version); err != nil {
				return nil, fmt.Errorf("decoding promotion %q: %w", key, err)
			}
			p.Promos[key] = Promotion{Version: version, BaseVersion: baseFromKey(key)}
			continue
		}

		var w wirePromotion
		if err := json.Unmarshal(val, &w); err != nil {
			return nil, fmt.Errorf("decoding promotion %q: %w", key, err)
		}
		base := w.MCVersion
		if base == "" {
			base = baseFromKey(key)
		}
		p.Promos[key] = Promotion{Version: w.Version, BaseVersion: base}
	}
	return p, nil
}

// Lookup returns the promotion stored under key.
func (p *Promotions) Lookup(key string) (Promotion, bool) {
	promo, ok := p.Promos[key]
	return promo, ok
}

// baseFromKey extracts "1.20.1" from "1.20.1-recommended". Bare channel keys
// have no base version.
func baseFromKey(key string) string {
	i := strings.LastIndexByte(key, '-')
	if i <= 0 {
		return ""
	}
	return key[:i]
}
