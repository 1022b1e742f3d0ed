package main

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	apperrors "github.com/kbukum/fetchkit/errors"
	"github.com/kbukum/fetchkit/fetch"
)

// parseParams turns key=value and key:=<json> arguments into ordered params.
// No arguments yield nil params.
func parseParams(args []string) (*fetch.Params, error) {
	if len(args) == 0 {
		return nil, nil
	}

	params := fetch.NewParams()
	for _, arg := range args {
		eq := strings.Index(arg, "=")
		if eq <= 0 {
			return nil, errors.Errorf("param %q is formatted incorrectly; want key=value or key:=json", arg)
		}

		key, value := arg[:eq], arg[eq+1:]
		if !strings.HasSuffix(key, ":") {
			params.Set(key, value)
			continue
		}

		key = strings.TrimSuffix(key, ":")
		if key == "" {
			return nil, errors.Errorf("param %q has an empty key", arg)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			return nil, errors.Wrapf(err, "param %q is not valid JSON", key)
		}
		params.Set(key, decoded)
	}
	return params, nil
}

// parseCredential reads "Name: value". An empty string means no credential.
func parseCredential(raw string) (*fetch.Credential, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return nil, apperrors.InvalidFormat("credential", "Name: value")
	}
	cred := &fetch.Credential{
		HeaderName:  strings.TrimSpace(name),
		HeaderValue: strings.TrimSpace(value),
	}
	if err := cred.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid credential")
	}
	return cred, nil
}
