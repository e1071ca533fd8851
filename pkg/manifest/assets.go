// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"
	"fmt"
	"path"
)

type (
	// AssetIndex lists the resource objects a version needs.
	AssetIndex struct {
		Objects map[string]AssetObject `json:"objects"`
	}

	// AssetObject is a content-addressed resource file.
	AssetObject struct {
		Hash string `json:"hash"`
		Size int64  `json:"size"`
	}
)

// ParseAssetIndex decodes an asset index.
func ParseAssetIndex(data []byte) (*AssetIndex, error) {
	var idx AssetIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding asset index: %w", err)
	}
	return &idx, nil
}

// Path returns "<hash[:2]>/<hash>", the object's location both on the
// resources host and under assets/objects.
func (o AssetObject) Path() string {
	if len(o.Hash) < 2 {
		return o.Hash
	}
	return path.Join(o.Hash[:2], o.Hash)
}
