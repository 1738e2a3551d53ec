package settings

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "TRACKR"

// Keys understood by the resolver. Environment names are the upper-cased
// key with EnvPrefix, e.g. TRACKR_BASE_URL.
const (
	KeyBaseURL         = "base_url"
	KeyMode            = "mode"
	KeyRelogin         = "relogin"
	KeyForce           = "force"
	KeyAnonymous       = "anonymous"
	KeyAPIKey          = "api_key"
	KeyNotebook        = "notebook"
	KeyCredentialsFile = "credentials_file"
)

// notebookEnv is set by Jupyter kernels.
const notebookEnv = "JPY_PARENT_PID"

// Source supplies raw values for the base layer of the merge.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is a fixed set of values.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok && v != ""
}

// ViperSource reads values from a viper instance (settings file and environment).
type ViperSource struct {
	v *viper.Viper
}

// NewViperSource wraps v. ConfigureViper should have been applied to it.
func NewViperSource(v *viper.Viper) *ViperSource {
	return &ViperSource{v: v}
}

// ConfigureViper binds the TRACKR_ environment to v.
func ConfigureViper(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyNotebook, EnvPrefix+"_NOTEBOOK", notebookEnv)
}

// Lookup implements Source.
func (s *ViperSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	value := strings.TrimSpace(s.v.GetString(key))
	return value, value != ""
}
