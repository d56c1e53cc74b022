package credentials

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const serviceName = "hostbridged"

var ErrNotFound = errors.New("credentials: not found")

// StoreAppSecret keeps daemon secrets (pairing key material) in the OS
// keyring instead of the config file.
func StoreAppSecret(key string, value string) error {
	return keyring.Set(serviceName, "app:"+key, value)
}

func LoadAppSecret(key string) (string, error) {
	val, err := keyring.Get(serviceName, "app:"+key)
	if err != nil {
		return "", ErrNotFound
	}
	return val, nil
}

func DeleteAppSecret(key string) {
	_ = keyring.Delete(serviceName, "app:"+key)
}
