// Package migrations upgrades credential files written by older releases.
package migrations

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"trackr/internal/domain"
)

// legacyLogin is the login recorded for keys that predate named logins.
const legacyLogin = "user"

// migrateFromV1 converts the flat "host: key" map of v1 files.
// Non-string values are skipped.
func migrateFromV1(data []byte) ([]domain.StoredCredential, error) {
	var legacy map[string]any
	if err := yaml.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}

	hosts := make([]string, 0, len(legacy))
	for host := range legacy {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	credentials := make([]domain.StoredCredential, 0, len(hosts))
	for _, host := range hosts {
		key, ok := legacy[host].(string)
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		credentials = append(credentials, domain.StoredCredential{
			Host:  domain.NormalizeHost(host),
			Login: legacyLogin,
			Key:   strings.TrimSpace(key),
		})
	}

	return credentials, nil
}
