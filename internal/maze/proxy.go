package maze

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvcrn/maze-requester/internal/env"
)

// ProxyVars are the environment variables dumped when a request times out.
var ProxyVars = []string{"http_proxy", "HTTP_PROXY", "https_proxy", "HTTPS_PROXY", "no_proxy", "NO_PROXY"}

const unsetValue = "<unset>"

// ProxySettings returns one name=value pair per proxy variable, in ProxyVars order.
func ProxySettings() []string {
	kv := make([]string, 0, len(ProxyVars))
	for _, name := range ProxyVars {
		value, ok := env.Lookup(name)
		if !ok {
			value = unsetValue
		}
		kv = append(kv, fmt.Sprintf("%s=%s", name, value))
	}
	return kv
}

// CheckProxySettings logs the current proxy variables at debug level and returns them.
func (r *Requester) CheckProxySettings() []string {
	return checkProxySettings(r.log)
}

func checkProxySettings(log *zerolog.Logger) []string {
	kv := ProxySettings()
	evt := log.Debug()
	for i, name := range ProxyVars {
		evt = evt.Str(name, strings.TrimPrefix(kv[i], name+"="))
	}
	evt.Msg(strings.Join(kv, ", "))
	return kv
}
