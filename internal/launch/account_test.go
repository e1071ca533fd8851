// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"testing"

	"github.com/google/uuid"
)

func TestOfflineAccount(t *testing.T) {
	t.Parallel()

	a := OfflineAccount("Steve")
	if a.DisplayName != "Steve" || a.AccessToken != "0" {
		t.Errorf("unexpected account: %+v", a)
	}

	id, err := uuid.Parse(a.UUID)
	if err != nil {
		t.Fatalf("UUID %q does not parse: %v", a.UUID, err)
	}
	if id.Version() != 3 || id.Variant() != uuid.RFC4122 {
		t.Errorf("UUID %s: version %d variant %v, want v3 RFC4122", id, id.Version(), id.Variant())
	}

	if again := OfflineAccount("Steve"); again.UUID != a.UUID {
		t.Error("offline UUID must be stable for a name")
	}
	if other := OfflineAccount("Alex"); other.UUID == a.UUID {
		t.Error("different names must yield different UUIDs")
	}
}
