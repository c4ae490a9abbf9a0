package dmc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// APIVersion identifies one of the IICS API generations.
type APIVersion string

// Supported API generations.
const (
	V1 APIVersion = "v1"
	V2 APIVersion = "v2"
	V3 APIVersion = "v3"
)

// Record is a single decoded JSON object returned by the API.
type Record map[string]interface{}

// Records is a decoded JSON array of objects.
type Records []Record

// String returns the value stored under key as a string, or "" when absent.
func (r Record) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Decode copies the record into out, which must be a pointer to a struct or
// map. Struct fields are matched on their json tag.
func (r Record) Decode(out interface{}) error {
	return decode(r, out)
}

// Decode copies the records into out, which must be a pointer to a slice.
func (r Records) Decode(out interface{}) error {
	return decode(r, out)
}

func decode(input, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating record decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	return nil
}

// Session is the result of one successful login. A new Session is produced
// before every authenticated call.
type Session struct {
	Version  APIVersion `json:"version"   yaml:"version"`
	BaseURL  string     `json:"base_url"  yaml:"base_url"`
	Token    string     `json:"-"         yaml:"-"`
	OrgID    string     `json:"org_id"    yaml:"org_id"`
	OrgName  string     `json:"org_name"  yaml:"org_name"`
	IssuedAt time.Time  `json:"issued_at" yaml:"issued_at"`
}

// Valid reports whether the session carries a token and a base URL.
func (s Session) Valid() bool {
	return s.Token != "" && s.BaseURL != ""
}

// Org returns the organization name, falling back to the organization id
// for API generations whose login response has no name.
func (s Session) Org() string {
	if s.OrgName != "" {
		return s.OrgName
	}

	return s.OrgID
}

// SAMLGroupMapping maps an IICS role to one or more SAML groups.
type SAMLGroupMapping struct {
	RoleName      string   `json:"roleName"      yaml:"roleName"`
	SAMLGroupName []string `json:"samlGroupName" yaml:"samlGroupName"`
}
