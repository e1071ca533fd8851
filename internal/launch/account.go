// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// offlineToken is the access token offline sessions present to the game.
const offlineToken = "0"

// Account is the identity a client is launched with. Credentials are taken
// as given; hearth never acquires or refreshes them.
type Account struct {
	UUID        string
	DisplayName string
	AccessToken string
}

// OfflineAccount returns an account for offline play. The UUID is the
// version 3 UUID of "OfflinePlayer:<name>" without a namespace, the same id
// an offline-mode server derives for that player name.
func OfflineAccount(name string) *Account {
	return &Account{
		UUID:        offlineUUID(name).String(),
		DisplayName: name,
		AccessToken: offlineToken,
	}
}

func offlineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	return uuid.UUID(sum)
}
